package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guillenLawn/bodega-backend/middleware"
	"github.com/guillenLawn/bodega-backend/models"
)

func usuarioJSON(u *models.Usuario) gin.H {
	return gin.H{
		"id":     u.ID,
		"email":  u.Email,
		"nombre": u.Nombre,
		"rol":    u.Rol,
	}
}

type registerInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
}

func (ct *Controller) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido"})
		return
	}

	usuario, err := ct.usuarios.Registrar(c.Request.Context(), input.Email, input.Password, input.Nombre)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	token, err := ct.tokens.Issue(usuario)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo generar el token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Usuario registrado exitosamente",
		"token":   token,
		"user":    usuarioJSON(usuario),
	})
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ct *Controller) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido"})
		return
	}

	usuario, err := ct.usuarios.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	token, err := ct.tokens.Issue(usuario)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo generar el token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login exitoso",
		"token":   token,
		"user":    usuarioJSON(usuario),
	})
}

// Verify echoes the decoded claims of a valid token. No database access.
func (ct *Controller) Verify(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token de acceso requerido"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":    claims.ID,
			"email": claims.Email,
			"rol":   claims.Rol,
		},
	})
}

type createAdminInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
}

// CreateAdmin creates an administrator account, with the historical
// defaults when fields are omitted.
func (ct *Controller) CreateAdmin(c *gin.Context) {
	input := createAdminInput{
		Email:    "superadmin@bodega.com",
		Password: "admin123",
		Nombre:   "Super Admin",
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido"})
			return
		}
	}

	usuario, err := ct.usuarios.CrearAdmin(c.Request.Context(), input.Email, input.Password, input.Nombre)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	token, err := ct.tokens.Issue(usuario)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo generar el token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Usuario administrador creado exitosamente",
		"token":   token,
		"user":    usuarioJSON(usuario),
	})
}

type convertToAdminInput struct {
	Email string `json:"email"`
}

func (ct *Controller) ConvertToAdmin(c *gin.Context) {
	input := convertToAdminInput{Email: "admin@bodega.com"}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido"})
			return
		}
	}

	usuario, err := ct.usuarios.ConvertirEnAdmin(c.Request.Context(), input.Email)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Usuario convertido a administrador exitosamente",
		"user":    usuarioJSON(usuario),
	})
}

type resetAdminPasswordInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ct *Controller) ResetAdminPassword(c *gin.Context) {
	input := resetAdminPasswordInput{Email: "admin@bodega.com", Password: "admin123"}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido"})
			return
		}
	}

	usuario, err := ct.usuarios.ResetPassword(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contraseña actualizada exitosamente",
		"user":    usuarioJSON(usuario),
	})
}
