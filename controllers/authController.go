package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jkimani/platepal-api/initializers"
	"github.com/jkimani/platepal-api/middlewares"
	"github.com/jkimani/platepal-api/models"
	"github.com/jkimani/platepal-api/services"
	"github.com/jkimani/platepal-api/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput         = "invalid input"
	msgUserAlreadyExists    = "User already exists with this email"
	msgInvalidCredentials   = "Incorrect email or password"
	msgInternalServerError  = "Internal Server Error"
	msgInvalidVerification  = "Invalid or expired verification token"
	msgInvalidResetToken    = "Invalid or expired reset token"
	msgUserNotFound         = "User doesn't exist"
	msgAccountCreated       = "Account created successfully"
	msgEmailVerified        = "Email verified successfully"
	msgResetLinkSent        = "Password reset link sent to your email."
	msgPasswordReset        = "Password reset successfully."
	msgLoggedOut            = "Logged out successfully"
	msgProfileUpdated       = "Profile updated successfully."
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"success": false, "message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// setSessionCookie stores the JWT in an HTTP-only, same-site-strict cookie.
func setSessionCookie(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie("token", token, int(24*time.Hour/time.Second), "/", "", false, true)
}

func findUserByEmail(email string) (models.User, error) {
	var user models.User
	result := initializers.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

type AuthController struct {
	mailer services.Mailer
	images services.ImageStore
}

func NewAuthController(mailer services.Mailer, images services.ImageStore) *AuthController {
	return &AuthController{mailer: mailer, images: images}
}

// Signup handles user registration
func (a *AuthController) Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if _, err := findUserByEmail(signUpData.Email); err == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	hashedPassword, err := hashPassword(signUpData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	verificationToken, err := utils.GenerateVerificationCode(6)
	if err != nil {
		log.Println("Token generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	user := models.User{
		Fullname:                   signUpData.Fullname,
		Email:                      signUpData.Email,
		Password:                   hashedPassword,
		Contact:                    signUpData.Contact,
		Address:                    "Update your address",
		City:                       "Update your city",
		Role:                       models.RoleUser,
		LastLogin:                  time.Now(),
		VerificationToken:          verificationToken,
		VerificationTokenExpiresAt: time.Now().Add(24 * time.Hour),
	}

	if result := initializers.DB.Create(&user); result.Error != nil {
		log.Println("User creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	setSessionCookie(ctx, tokenString)

	if err := a.mailer.SendVerificationEmail(user.Email, verificationToken); err != nil {
		// Continue despite email error, but log it
		log.Println("Error sending verification email:", err)
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"message": msgAccountCreated,
		"user":    user,
	})
}

// Login handles user authentication
func (a *AuthController) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByEmail(loginData.Email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	setSessionCookie(ctx, tokenString)

	if result := initializers.DB.Model(&user).Update("last_login", time.Now()); result.Error != nil {
		log.Println("Error updating last login:", result.Error)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome back " + user.Fullname,
		"user":    user,
	})
}

// VerifyEmail marks an account verified using the emailed code
func (a *AuthController) VerifyEmail(ctx *gin.Context) {
	var body struct {
		VerificationCode string `json:"verificationCode" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var user models.User
	result := initializers.DB.
		Where("verification_token = ? AND verification_token_expires_at > ?", body.VerificationCode, time.Now()).
		First(&user)
	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidVerification)
		return
	}

	updates := map[string]any{
		"is_verified":                   true,
		"verification_token":            "",
		"verification_token_expires_at": time.Time{},
	}
	if result := initializers.DB.Model(&user).Updates(updates); result.Error != nil {
		log.Println("Account verification error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := a.mailer.SendWelcomeEmail(user.Email, user.Fullname); err != nil {
		log.Println("Error sending welcome email:", err)
	}

	user.IsVerified = true
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": msgEmailVerified, "user": user})
}

// Logout clears the session cookie
func (a *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie("token", "", -1, "/", "", false, true)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": msgLoggedOut})
}

// ForgotPassword emails a password reset link
func (a *AuthController) ForgotPassword(ctx *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByEmail(body.Email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserNotFound)
		return
	}

	resetToken, err := utils.GenerateResetToken()
	if err != nil {
		log.Println("Reset token generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	updates := map[string]any{
		"reset_password_token":            resetToken,
		"reset_password_token_expires_at": time.Now().Add(1 * time.Hour),
	}
	if result := initializers.DB.Model(&user).Updates(updates); result.Error != nil {
		log.Println("Error saving reset token:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	resetURL := os.Getenv("FRONTEND_URL") + "/resetpassword/" + resetToken
	if err := a.mailer.SendPasswordResetEmail(user.Email, resetURL); err != nil {
		log.Println("Error sending password reset email:", err)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": msgResetLinkSent})
}

// ResetPassword sets a new password using a reset token
func (a *AuthController) ResetPassword(ctx *gin.Context) {
	var body struct {
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	resetToken := ctx.Param("resetToken")
	var user models.User
	result := initializers.DB.
		Where("reset_password_token = ? AND reset_password_token_expires_at > ?", resetToken, time.Now()).
		First(&user)
	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidResetToken)
		return
	}

	hashedPassword, err := hashPassword(body.NewPassword)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	updates := map[string]any{
		"password":                        hashedPassword,
		"reset_password_token":            "",
		"reset_password_token_expires_at": time.Time{},
	}
	if result := initializers.DB.Model(&user).Updates(updates); result.Error != nil {
		log.Println("Error resetting password:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := a.mailer.SendResetSuccessEmail(user.Email); err != nil {
		log.Println("Error sending reset confirmation email:", err)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": msgPasswordReset})
}

// CheckAuth returns the authenticated caller's profile
func (a *AuthController) CheckAuth(ctx *gin.Context) {
	var user models.User
	if err := initializers.DB.First(&user, middlewares.GetUserID(ctx)).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "user": user})
}

// UpdateProfile updates the caller's contact details and profile picture
func (a *AuthController) UpdateProfile(ctx *gin.Context) {
	var body struct {
		Fullname       string `json:"fullname"`
		Email          string `json:"email"`
		Address        string `json:"address"`
		City           string `json:"city"`
		ProfilePicture string `json:"profilePicture"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	updates := map[string]any{
		"fullname": body.Fullname,
		"email":    body.Email,
		"address":  body.Address,
		"city":     body.City,
	}

	if body.ProfilePicture != "" {
		pictureURL, err := a.images.UploadDataURI(ctx.Request.Context(), body.ProfilePicture)
		if err != nil {
			log.Println("Profile picture upload error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to upload profile picture")
			return
		}
		updates["profile_picture"] = pictureURL
	}

	var user models.User
	if err := initializers.DB.First(&user, middlewares.GetUserID(ctx)).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	if result := initializers.DB.Model(&user).Updates(updates); result.Error != nil {
		log.Println("Profile update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": msgProfileUpdated, "user": user})
}
