package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"volunteerhub/dto"
	"volunteerhub/internal/apperr"
	"volunteerhub/internal/middleware"
	"volunteerhub/internal/models"
	repo "volunteerhub/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Tokens stay valid until expiry; there is no revocation list.
const TokenTTL = 7 * 24 * time.Hour

const bcryptCost = 10

func SignToken(secret string, uid bson.ObjectID) (string, error) {
	now := time.Now()
	claims := middleware.TokenClaims{
		ID: uid.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// RegisterVolunteer creates the account. The unique index on email backs
// the duplicate check for concurrent registrations.
func RegisterVolunteer(ctx context.Context, body dto.RegisterRequest) (*models.Volunteer, error) {
	email := strings.ToLower(strings.TrimSpace(body.Email))

	_, err := repo.FindVolunteerByEmail(ctx, email)
	if err == nil {
		return nil, apperr.New(apperr.Conflict, "email already in use")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	v := models.Volunteer{
		ID:           bson.NewObjectID(),
		FirstName:    strings.TrimSpace(body.FirstName),
		LastName:     strings.TrimSpace(body.LastName),
		Email:        email,
		Phone:        strings.TrimSpace(body.Phone),
		PasswordHash: string(hash),
		Rating:       0,
		CreatedAt:    time.Now().UTC(),
	}

	if err := repo.InsertVolunteer(ctx, v); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.New(apperr.Conflict, "email already in use")
		}
		return nil, err
	}
	return &v, nil
}

func LoginVolunteer(ctx context.Context, email, password string) (*models.Volunteer, error) {
	v, err := repo.FindVolunteerByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.Unauthorized, "invalid credentials")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(v.PasswordHash), []byte(password)) != nil {
		return nil, apperr.New(apperr.Unauthorized, "invalid credentials")
	}
	return v, nil
}

func UserViewOf(v *models.Volunteer) dto.UserView {
	return dto.UserView{
		ID:        v.ID.Hex(),
		Email:     v.Email,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Rating:    v.Rating,
	}
}
