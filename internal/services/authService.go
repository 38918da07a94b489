package services

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/abdulh21/TourVista/internal/db"
	"github.com/abdulh21/TourVista/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret = os.Getenv("JWT_SECRET")

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateJWT generates a JWT token carrying the user id
func GenerateJWT(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * 4).Unix(), // Token expires in 4 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// RegisterUser creates a new account and returns it with a fresh token
func RegisterUser(name, email, password string) (models.User, string, error) {
	collection := db.GetCollection("tourvista", "users")

	// Check if user already exists
	var existingUser models.User
	err := collection.FindOne(context.TODO(), bson.M{"email": email}).Decode(&existingUser)
	if err == nil {
		return models.User{}, "", errors.New("email already in use")
	}

	// Hash password
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
	}
	if _, err := collection.InsertOne(context.TODO(), user); err != nil {
		return models.User{}, "", err
	}

	token, err := GenerateJWT(user.ID.Hex())
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// LoginUser authenticates a user and returns them with a JWT
func LoginUser(email, password string) (models.User, string, error) {
	collection := db.GetCollection("tourvista", "users")

	var user models.User
	err := collection.FindOne(context.TODO(), bson.M{"email": email}).Decode(&user)
	if err != nil {
		return models.User{}, "", errors.New("invalid credentials")
	}

	// Verify password
	if !VerifyPassword(password, user.Password) {
		return models.User{}, "", errors.New("invalid credentials")
	}

	token, err := GenerateJWT(user.ID.Hex())
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}
