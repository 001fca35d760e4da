package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rexonmold/shop-backend/internal/cfg"
	"github.com/rexonmold/shop-backend/internal/usecase"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	authCfg     *cfg.AuthCfg
	validate    *validator.Validate
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, authCfg *cfg.AuthCfg, validate *validator.Validate, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		authCfg:     authCfg,
		validate:    validate,
		logger:      logger,
	}
}

// SignupRequest — форма регистрации.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest — форма входа.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// signupForm отдает пустую форму регистрации.
func (h *AuthHandler) signupForm(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, SignupRequest{})
}

// signup
//
//	@Summary		Регистрация
//	@Description	Создает пользователя и сразу логинит его: cookie с токеном и redirect в каталог
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			form	body	SignupRequest	true	"Данные регистрации"
//	@Success		303		"Redirect на /"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse	"Логин или email заняты"
//	@Router			/signup/ [post]
func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrMissingFields.Error(), err.Error())
		WriteError(w, e.ErrMissingFields)
		return
	}

	res, err := h.authUsecase.Signup(r.Context(), &usecase.SignupReq{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	setAuthCookie(w, res.Token, int(h.authCfg.TokenTTL.Seconds()))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// loginForm отдает пустую форму входа.
func (h *AuthHandler) loginForm(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, LoginRequest{})
}

// login
//
//	@Summary		Вход
//	@Description	Проверяет логин/пароль и выдает cookie с токеном сессии
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			form	body	LoginRequest	true	"Логин и пароль"
//	@Success		303		"Redirect на next или /"
//	@Failure		401		{object}	ErrorResponse	"Неверные логин или пароль"
//	@Router			/login/ [post]
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrMissingFields.Error(), err.Error())
		WriteError(w, e.ErrMissingFields)
		return
	}

	res, err := h.authUsecase.Login(r.Context(), &usecase.LoginReq{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	setAuthCookie(w, res.Token, int(h.authCfg.TokenTTL.Seconds()))

	next := r.URL.Query().Get("next")
	if next == "" || next[0] != '/' {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}
