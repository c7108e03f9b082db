package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/autherrors"
	"storefront-service/models"
	"storefront-service/validation"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// ValidateLogin runs the login form rules before the client submits
// credentials to the identity provider
func (ac *AuthController) ValidateLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	errs := validation.ValidateLoginForm(req.Email, req.Password)
	if errs.HasErrors() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "errors": errs})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// ValidateSignup runs the signup form rules with the stronger password
// policy for new accounts
func (ac *AuthController) ValidateSignup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	errs := validation.ValidateSignupForm(req.Name, req.Email, req.Password, req.ConfirmPassword)
	if errs.HasErrors() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "errors": errs})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// TranslateError turns whatever error payload the identity provider
// handed the client into a display message. The body is taken as-is;
// translation itself cannot fail.
func (ac *AuthController) TranslateError(c *gin.Context) {
	var payload any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": autherrors.Process(payload)})
}
