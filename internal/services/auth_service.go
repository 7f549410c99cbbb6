package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"vacation-tracker/internal/config"
)

// AuthServiceInterface определяет методы для аутентификации
type AuthServiceInterface interface {
	Login(login, password string) (string, error)
}

// AuthService выполняет вход единственной учетной записи администратора.
// Отдельной таблицы пользователей нет: сотрудники - это записи, а не аккаунты,
// учетные данные администратора задаются конфигурацией.
type AuthService struct {
	admin     config.AdminConfig
	jwtSecret string
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(admin config.AdminConfig, jwtSecret string) *AuthService {
	return &AuthService{
		admin:     admin,
		jwtSecret: jwtSecret,
	}
}

// Login проверяет учетные данные администратора и возвращает JWT токен
func (s *AuthService) Login(login, password string) (string, error) {
	if s.admin.PasswordHash == "" {
		return "", errors.New("вход отключен: не задан хеш пароля администратора")
	}
	if login != s.admin.Login {
		return "", errors.New("неверное имя пользователя или пароль")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
		// Пароль не совпадает или другая ошибка bcrypt
		return "", errors.New("неверное имя пользователя или пароль")
	}

	claims := jwt.MapClaims{
		"login":    login,
		"is_admin": true,
		"exp":      time.Now().Add(time.Hour * 72).Unix(), // Токен действителен 72 часа
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", errors.New("внутренняя ошибка сервера при генерации токена")
	}
	return tokenString, nil
}
