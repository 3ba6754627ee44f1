package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type SessionJWT struct {
	Subject   string
	Email     string
	Role      string
	ExpiresAt int64
}

func parseSessionJWT(jwtStr string, decodeToken string) (*SessionJWT, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}

	out := SessionJWT{}
	out.Subject, _ = claims["sub"].(string)
	out.Email, _ = claims["email"].(string)
	out.Role, _ = claims["role"].(string)
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = int64(exp)
	}
	if out.Subject == "" {
		return nil, fmt.Errorf("token is missing sub")
	}

	return &out, nil
}

// authMiddleware requires a bearer token and stores the caller's
// user account id under "userAccountID"
func (m ApiHandler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			returnErrorJsonCode(fmt.Errorf("missing authorization header"), c, http.StatusUnauthorized)
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		session, err := parseSessionJWT(tokenStr, m.JwtDecodeToken)
		if err != nil {
			returnErrorJsonCode(err, c, http.StatusUnauthorized)
			return
		}

		c.Set("userAccountID", session.Subject)
		c.Next()
	}
}

func getUserAccountID(c *gin.Context) (uuid.UUID, error) {
	ginUserAccountID, ok := c.Get("userAccountID")
	if !ok {
		return uuid.Nil, fmt.Errorf("must be logged in")
	}
	userAccountIDStr, ok := ginUserAccountID.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("misformatted user account id")
	}

	userAccountID, err := uuid.Parse(userAccountIDStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("misformatted user account id: %w", err)
	}
	return userAccountID, nil
}
