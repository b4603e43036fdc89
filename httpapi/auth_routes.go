package httpapi

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/clc-tz/legalbridge-backend/auth"
)

func (s *Server) registerAuthRoutes(g fiber.Router) {
	g.Post("/login", s.loginPost)
	g.Post("/signup", s.signupPost)
	g.Post("/logout", s.requireAuth(), s.logoutPost)
	g.Get("/me", s.requireAuth(), s.meShow)
	g.Post("/verify", s.requireAuth(), s.verifyPost)
	g.Get("/users", s.requireAuth(), s.requireAdmin(), s.usersIndex)
	g.Put("/users", s.requireAuth(), s.requireAdmin(), s.usersUpdate)
	g.Delete("/users/:id", s.requireAuth(), s.requireAdmin(), s.userDelete)
}

// LoginRequest is the login form payload
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

func (r LoginRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.UsernameOrEmail, validation.Required, validation.Length(1, 200)),
			validation.Field(&r.Password, validation.Required, validation.Length(1, 200)),
		)
	}, "Invalid login request payload")
}

func (s *Server) loginPost(c *fiber.Ctx) error {
	payload := new(LoginRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "failed to parse request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	result, err := s.auther.Login(c.UserContext(), payload.UsernameOrEmail, payload.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    result,
	})
}

// SignupRequest is the account creation payload
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r SignupRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
			validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
			validation.Field(&r.Role, validation.In(auth.RoleUser, auth.RoleAdmin)),
		)
	}, "Invalid signup request payload")
}

func (s *Server) signupPost(c *fiber.Ctx) error {
	payload := new(SignupRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "failed to parse request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	// Creating an admin account requires an admin bearer token; anyone may
	// sign up as a regular user.
	if payload.Role == auth.RoleAdmin {
		token, err := bearerToken(c.Get(fiber.HeaderAuthorization), s.authCfg.GetAuthScheme())
		if err != nil {
			return err
		}

		claims, err := s.auther.Authenticate(c.UserContext(), token)
		if err != nil {
			return errUnauthorized
		}

		if err := auth.RequireRole(claims, auth.RoleAdmin); err != nil {
			return err
		}
	}

	handler := auth.NewRegisterUserHandler(s.repo).
		WithBcryptCost(s.authCfg.GetBcryptCost())
	user, err := handler.Execute(c.UserContext(), auth.RegisterUserMessage{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     payload.Role,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user_id": user.ID,
	})
}

func (s *Server) logoutPost(c *fiber.Ctx) error {
	token, ok := auth.GetToken(c.UserContext())
	if !ok {
		return errUnauthorized
	}

	if err := s.auther.Logout(c.UserContext(), token); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Logout successful"})
}

func (s *Server) meShow(c *fiber.Ctx) error {
	claims, ok := auth.GetClaims(c.UserContext())
	if !ok {
		return errUnauthorized
	}

	user, err := s.repo.Users().GetByIdentifier(c.UserContext(), claims.UserID())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"user": user})
}

func (s *Server) verifyPost(c *fiber.Ctx) error {
	claims, ok := auth.GetClaims(c.UserContext())
	if !ok {
		return errUnauthorized
	}

	user, err := s.repo.Users().GetByIdentifier(c.UserContext(), claims.UserID())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
	})
}

func (s *Server) usersIndex(c *fiber.Ctx) error {
	users, err := s.repo.Users().ListAccounts(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"users": users,
		"total": len(users),
	})
}

// UserUpdateRequest updates one account in a bulk update
type UserUpdateRequest struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
	Password string    `json:"password,omitempty"`
}

func (r UserUpdateRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.ID, validation.By(func(any) error {
				if r.ID == uuid.Nil {
					return fmt.Errorf("cannot be blank")
				}
				return nil
			})),
			validation.Field(&r.Email, is.Email),
			validation.Field(&r.Role, validation.In(auth.RoleUser, auth.RoleAdmin)),
		)
	}, "Invalid user update payload")
}

// UsersUpdateRequest is the bulk account update payload
type UsersUpdateRequest struct {
	Users []UserUpdateRequest `json:"users"`
}

func (s *Server) usersUpdate(c *fiber.Ctx) error {
	claims, ok := auth.GetClaims(c.UserContext())
	if !ok {
		return errUnauthorized
	}

	payload := new(UsersUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "failed to parse request body").
			WithCode(errors.CodeBadRequest)
	}

	if len(payload.Users) == 0 {
		return errors.New("no users to update", errors.CategoryBadInput).
			WithCode(errors.CodeBadRequest)
	}

	handler := auth.NewUpdateUserHandler(s.repo).
		WithBcryptCost(s.authCfg.GetBcryptCost())

	updated := make([]*auth.User, 0, len(payload.Users))
	for _, record := range payload.Users {
		if err := record.Validate(); err != nil {
			return err
		}

		// Admins cannot demote themselves mid-session
		if record.ID.String() == claims.UserID() && record.Role != "" && record.Role != claims.Role() {
			return errors.New("cannot change your own role", errors.CategoryBadInput).
				WithTextCode("SELF_ROLE_CHANGE").
				WithCode(errors.CodeBadRequest)
		}

		user, err := handler.Execute(c.UserContext(), auth.UpdateUserMessage{
			ID:       record.ID,
			Username: record.Username,
			Email:    record.Email,
			Role:     record.Role,
			Status:   record.Status,
			Password: record.Password,
		})
		if err != nil {
			return err
		}

		updated = append(updated, user)
	}

	return c.JSON(fiber.Map{
		"message": "Users updated successfully",
		"users":   updated,
	})
}

func (s *Server) userDelete(c *fiber.Ctx) error {
	claims, ok := auth.GetClaims(c.UserContext())
	if !ok {
		return errUnauthorized
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "invalid user id").
			WithCode(errors.CodeBadRequest)
	}

	if id.String() == claims.UserID() {
		return errors.New("cannot delete your own account", errors.CategoryBadInput).
			WithTextCode("SELF_DELETE").
			WithCode(errors.CodeBadRequest)
	}

	handler := auth.NewDeleteUserHandler(s.repo)
	if err := handler.Execute(c.UserContext(), auth.DeleteUserMessage{ID: id}); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
