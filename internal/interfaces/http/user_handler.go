package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lingua-launchpad/academy-server/internal/infrastructure/auth"
	"github.com/lingua-launchpad/academy-server/internal/infrastructure/driver"
	"github.com/lingua-launchpad/academy-server/internal/infrastructure/validate"
	"github.com/lingua-launchpad/academy-server/internal/user"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler user related operations
type UserHandler struct {
	JWTUtil        *auth.JWTUtil
	UserRepository user.UserRepository
	KVStore        driver.KeyValueDB
	UserUseCase    user.UserUseCase
	Validator      validate.Validator
	MaximumRetry   int
	RetryTimeout   time.Duration
}

// NewUserHandler create an user controller instance
func NewUserHandler(
	JWTUtil *auth.JWTUtil,
	UserRepository user.UserRepository,
	KVStore driver.KeyValueDB,
	UserUseCase user.UserUseCase,
	MaximumRetry int,
	RetryTimeout time.Duration,
	Validator validate.Validator,
) *UserHandler {
	handler := &UserHandler{
		JWTUtil:        JWTUtil,
		UserUseCase:    UserUseCase,
		Validator:      Validator,
		KVStore:        KVStore,
		UserRepository: UserRepository,
		MaximumRetry:   MaximumRetry,
		RetryTimeout:   RetryTimeout,
	}
	return handler
}

type signInPost struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleSignIn validate the credential and issue a session token. Unknown
// usernames are provisioned on the fly, any password passing validation
// opens an account.
func (uh *UserHandler) HandleSignIn(c echo.Context) (err error) {
	ju := uh.JWTUtil
	repo := uh.UserRepository

	post := new(signInPost)
	if err = c.Bind(&post); err != nil {
		internal := err.(*echo.HTTPError).Internal
		return c.JSON(http.StatusUnprocessableEntity,
			NewRESTStandardError(http.StatusUnprocessableEntity, internal.Error()))
	}
	if err := uh.Validator.Struct(post); err != nil {
		return c.JSON(http.StatusBadRequest,
			NewRESTValidationError(http.StatusBadRequest, "Failed to validate fields", err))
	}

	ctx := c.Request().Context()
	credential := &user.UserModel{Username: post.Username, Email: post.Username}
	found, err := repo.FindByCredential(ctx, credential)
	if err != nil {
		return err
	}
	if found == nil {
		return uh.provision(c, post)
	}
	if found.LoginRetry >= uh.MaximumRetry {
		if time.Since(time.Unix(found.LastLogin, 0)) < uh.RetryTimeout {
			return c.JSON(http.StatusForbidden, NewRESTStandardError(http.StatusForbidden, user.ErrUserTooManyRetry.Error()))
		}
		found.LoginRetry = 0
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(post.Password)); err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			found.LoginRetry++
			found.LastLogin = time.Now().Unix()
			repo.UpdateUser(ctx, found)
			return c.JSON(http.StatusUnauthorized, NewRESTStandardError(http.StatusUnauthorized, user.ErrNoSuchUser.Error()))
		}
		return err
	}

	found.LoginRetry = 0
	found.LastLogin = time.Now().Unix()
	if err := repo.UpdateUser(ctx, found); err != nil {
		return err
	}
	tokenStr, err := ju.GenerateTokenStr(found)
	if err != nil {
		return err
	}
	ju.SetClientToken(c, tokenStr)
	return c.NoContent(http.StatusOK)
}

func (uh *UserHandler) provision(c echo.Context, post *signInPost) error {
	account := &user.UserModel{
		Username: post.Username,
		Email:    post.Username,
		Password: post.Password,
	}
	if password, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.MinCost); err == nil {
		account.Password = string(password)
	} else {
		return err
	}
	account.LastLogin = time.Now().Unix()
	if err := uh.UserRepository.SaveUser(c.Request().Context(), account); err != nil {
		return err
	}
	tokenStr, err := uh.JWTUtil.GenerateTokenStr(account)
	if err != nil {
		return err
	}
	uh.JWTUtil.SetClientToken(c, tokenStr)
	return c.NoContent(http.StatusCreated)
}

// HandleSignUp ...
func (uh *UserHandler) HandleSignUp(c echo.Context) (err error) {
	UserUseCase := uh.UserUseCase
	post := new(user.UserModel)

	if err = c.Bind(&post); err != nil {
		internal := err.(*echo.HTTPError).Internal
		return c.JSON(http.StatusUnprocessableEntity,
			NewRESTStandardError(http.StatusUnprocessableEntity, internal.Error()))
	}

	if err := uh.Validator.Struct(post); err != nil {
		return c.JSON(http.StatusBadRequest,
			NewRESTValidationError(http.StatusBadRequest, "Failed to validate fields", err))
	}

	if password, err := bcrypt.GenerateFromPassword([]byte(post.Password), bcrypt.MinCost); err == nil {
		post.Password = string(password)
	} else {
		return err
	}

	_, err = UserUseCase.SignUp(c.Request().Context(), post)
	if err != nil {
		if errors.Is(err, user.ErrDuplicatedUser) {
			return c.JSON(http.StatusConflict, NewRESTStandardError(http.StatusConflict, err.Error()))
		}
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// HandleSignOut ...
func (uh *UserHandler) HandleSignOut(c echo.Context) (err error) {
	ju := uh.JWTUtil
	kv := uh.KVStore

	if tokenStr, err := ju.ExtractToken(c); err == nil {
		if token, err := ju.Validate(tokenStr); err == nil {
			ju.ClearClientToken(c)
			return kv.SetEX(tokenStr, "", token.TimeRemaining())
		}
		return c.NoContent(http.StatusUnauthorized)
	}
	return nil
}

// HandleUserExists ...
func (uh *UserHandler) HandleUserExists(c echo.Context) (err error) {
	UserUseCase := uh.UserUseCase
	post := new(user.UserModel)
	post.Username = c.QueryParam("username")
	post.Email = c.QueryParam("email")

	if err := uh.Validator.AllEmpty([]string{"username", "email"}, post.Username, post.Email); err != nil {
		return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", err))
	}

	existing, err := UserUseCase.Exists(c.Request().Context(), post)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, existing)
}
