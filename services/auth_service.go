package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"
)

func RegisterUser(email, password, fullName string, bodyWeightKg, heightCm float64) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:        email,
		Password:     hashedPassword,
		FullName:     fullName,
		BodyWeightKg: bodyWeightKg,
		HeightCm:     heightCm,
		Disabled:     false,
	}

	return config.DB.Create(&user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", err
	}

	return token, nil
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":             user.ID,
		"email":          user.Email,
		"full_name":      user.FullName,
		"body_weight_kg": user.BodyWeightKg,
		"height_cm":      user.HeightCm,
	}, nil
}

type ProfileInput struct {
	FullName     string  `json:"full_name"`
	BodyWeightKg float64 `json:"body_weight_kg"`
	HeightCm     float64 `json:"height_cm"`
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return errors.New("user not found or disabled")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.BodyWeightKg > 0 {
		user.BodyWeightKg = input.BodyWeightKg
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}

	return config.DB.Save(&user).Error
}
