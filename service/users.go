package service

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/guillenLawn/bodega-backend/models"
	"github.com/guillenLawn/bodega-backend/repository"
)

var (
	ErrPasswordCorta         = errors.New("la contraseña debe tener al menos 6 caracteres")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
)

type UserService struct {
	usuarios repository.UsuarioRepository
}

func NewUserService(usuarios repository.UsuarioRepository) *UserService {
	return &UserService{usuarios: usuarios}
}

// Registrar creates a customer account with a bcrypt-hashed password.
func (s *UserService) Registrar(ctx context.Context, email, password, nombre string) (*models.Usuario, error) {
	return s.crear(ctx, email, password, nombre, models.RolCliente)
}

// CrearAdmin creates an administrator account directly.
func (s *UserService) CrearAdmin(ctx context.Context, email, password, nombre string) (*models.Usuario, error) {
	return s.crear(ctx, email, password, nombre, models.RolAdmin)
}

func (s *UserService) crear(ctx context.Context, email, password, nombre string, rol models.Rol) (*models.Usuario, error) {
	if email == "" || password == "" || nombre == "" {
		return nil, ErrDatosInvalidos
	}
	if len(password) < 6 {
		return nil, ErrPasswordCorta
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := models.Usuario{
		Email:        email,
		PasswordHash: string(hash),
		Nombre:       nombre,
		Rol:          rol,
		Activo:       true,
	}
	if err := s.usuarios.Create(ctx, &usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}

// Login verifies the credentials. Unknown email and wrong password return
// the same error so the response never leaks which accounts exist.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.Usuario, error) {
	if email == "" || password == "" {
		return nil, ErrDatosInvalidos
	}

	usuario, err := s.usuarios.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}
	return usuario, nil
}

// ConvertirEnAdmin promotes an existing user to administrator.
func (s *UserService) ConvertirEnAdmin(ctx context.Context, email string) (*models.Usuario, error) {
	usuario, err := s.usuarios.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	usuario.Rol = models.RolAdmin
	if err := s.usuarios.Update(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// ResetPassword overwrites a user's password hash.
func (s *UserService) ResetPassword(ctx context.Context, email, nuevaPassword string) (*models.Usuario, error) {
	if len(nuevaPassword) < 6 {
		return nil, ErrPasswordCorta
	}
	usuario, err := s.usuarios.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(nuevaPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario.PasswordHash = string(hash)
	if err := s.usuarios.Update(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// BootstrapAdmin creates a default administrator when none exists yet.
// Best effort: failures are logged and startup continues.
func (s *UserService) BootstrapAdmin(ctx context.Context) {
	existe, err := s.usuarios.ExisteAdmin(ctx)
	if err != nil {
		log.Printf("bootstrap admin: %v", err)
		return
	}
	if existe {
		return
	}
	if _, err := s.CrearAdmin(ctx, "superadmin@bodega.com", "admin123", "Super Administrador"); err != nil {
		log.Printf("bootstrap admin: %v", err)
		return
	}
	log.Println("usuario admin por defecto creado: superadmin@bodega.com")
}
