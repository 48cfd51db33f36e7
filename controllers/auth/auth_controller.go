package controllers

import (
	"context"
	"regexp"
	"time"

	"github.com/Adi-1655/snackshub/configs"
	"github.com/Adi-1655/snackshub/models"
	"github.com/Adi-1655/snackshub/responses"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func userCollection() *mongo.Collection {
	return configs.GetCollection("users")
}

var phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)

func createJwt(userId, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   userId,
		"role": role,
		"exp":  time.Now().Add(time.Hour * 720).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.EnvJWTSecret()))
}

// Register creates a new account keyed by phone number.
func Register(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Name       string `json:"name"`
		Phone      string `json:"phone"`
		HostelId   string `json:"hostelId"`
		HostelName string `json:"hostelName"`
		RoomNumber string `json:"roomNumber"`
		Password   string `json:"password"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	if reqBody.Name == "" || reqBody.Phone == "" || reqBody.HostelId == "" ||
		reqBody.HostelName == "" || reqBody.RoomNumber == "" || reqBody.Password == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Please add all fields")
	}

	if !phoneRegex.MatchString(reqBody.Phone) {
		return responses.Error(c, fiber.StatusBadRequest, "Please provide a valid 10-digit phone number")
	}

	if len(reqBody.Password) < 6 {
		return responses.Error(c, fiber.StatusBadRequest, "Password must be at least 6 characters long")
	}

	var existingUser models.User
	err := userCollection().FindOne(ctx, bson.M{"phone": reqBody.Phone}).Decode(&existingUser)
	if err != nil && err != mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusInternalServerError, "Error checking user existence")
	} else if err == nil {
		return responses.Error(c, fiber.StatusBadRequest, "User with this phone number already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqBody.Password), bcrypt.DefaultCost)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error hashing password")
	}

	now := time.Now()
	newUser := models.User{
		Id:         primitive.NewObjectID(),
		Name:       reqBody.Name,
		Phone:      reqBody.Phone,
		HostelId:   reqBody.HostelId,
		HostelName: reqBody.HostelName,
		RoomNumber: reqBody.RoomNumber,
		Password:   string(hashedPassword),
		Role:       models.RoleUser,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err = userCollection().InsertOne(ctx, newUser); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error in saving user, please try again later")
	}

	token, err := createJwt(newUser.Id.Hex(), newUser.Role)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error while generating jwt token")
	}

	return responses.Created(c, "User registered successfully", &fiber.Map{
		"id":    newUser.Id.Hex(),
		"name":  newUser.Name,
		"phone": newUser.Phone,
		"role":  newUser.Role,
		"token": token,
	})
}

// Login authenticates by phone and password.
func Login(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	var user models.User
	err := userCollection().FindOne(ctx, bson.M{"phone": reqBody.Phone}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	} else if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching from database")
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqBody.Password)); err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if !user.IsActive {
		return responses.Error(c, fiber.StatusForbidden, "Account is deactivated")
	}

	token, err := createJwt(user.Id.Hex(), user.Role)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error while generating jwt token")
	}

	return responses.Ok(c, "User signed in successfully", &fiber.Map{
		"id":    user.Id.Hex(),
		"name":  user.Name,
		"phone": user.Phone,
		"role":  user.Role,
		"token": token,
	})
}

// GetMe returns the authenticated user's profile.
func GetMe(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var user models.User
	err = userCollection().FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "User not found")
	} else if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching user data")
	}

	return responses.Ok(c, "User fetched successfully", &fiber.Map{"user": user})
}

// UpdateProfile changes the user's name, hostel details or password.
func UpdateProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var reqBody struct {
		Name       string `json:"name"`
		HostelId   string `json:"hostelId"`
		HostelName string `json:"hostelName"`
		RoomNumber string `json:"roomNumber"`
		Password   string `json:"password"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	update := bson.M{"updatedAt": time.Now()}
	if reqBody.Name != "" {
		update["name"] = reqBody.Name
	}
	if reqBody.HostelId != "" {
		update["hostelId"] = reqBody.HostelId
	}
	if reqBody.HostelName != "" {
		update["hostelName"] = reqBody.HostelName
	}
	if reqBody.RoomNumber != "" {
		update["roomNumber"] = reqBody.RoomNumber
	}
	if reqBody.Password != "" {
		if len(reqBody.Password) < 6 {
			return responses.Error(c, fiber.StatusBadRequest, "Password must be at least 6 characters long")
		}
		hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte(reqBody.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return responses.Error(c, fiber.StatusInternalServerError, "Error hashing password")
		}
		update["password"] = string(hashedPassword)
	}

	result, err := userCollection().UpdateOne(ctx, bson.M{"_id": userObjectID}, bson.M{"$set": update})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating profile")
	}
	if result.MatchedCount == 0 {
		return responses.Error(c, fiber.StatusNotFound, "User not found")
	}

	var user models.User
	if err = userCollection().FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching user data")
	}

	return responses.Ok(c, "Profile updated successfully", &fiber.Map{"user": user})
}
