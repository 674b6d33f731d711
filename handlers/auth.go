package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"sgfrotas.com.br/api/config"
	"sgfrotas.com.br/api/middleware"
	"sgfrotas.com.br/api/models"
)

type registerReq struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// Register handles public self-registration. Only MANAGER and OPERATOR
// may be chosen; ADMIN accounts are provisioned elsewhere.
//
// @Summary      Registro público de usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201 {object} models.User
// @Router       /api/auth/register [post]
func Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Username == "" || len(req.Password) < 6 {
		http.Error(w, "username e senha (mínimo 6 caracteres) são obrigatórios", http.StatusBadRequest)
		return
	}
	if !models.ValidRegistrationRole(req.Role) {
		http.Error(w, "role inválida. Use 'MANAGER' para gestor ou 'OPERATOR' para motorista", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "error hashing password", http.StatusInternalServerError)
		return
	}
	u := models.User{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		Role:         req.Role,
		IsActive:     true,
	}
	if err := config.DB.Create(&u).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			http.Error(w, "username already taken", http.StatusConflict)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for an access/refresh token pair.
//
// @Summary      Obtenção do par de tokens
// @Tags         auth
// @Router       /api/auth/token [post]
func Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var u models.User
	if err := config.DB.Where("username = ?", req.Username).First(&u).Error; err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if !u.IsActive {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	pair, err := middleware.GenerateTokenPair(&u)
	if err != nil {
		http.Error(w, "couldn't create token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pair)
}

type refreshReq struct {
	Refresh string `json:"refresh"`
}

// RefreshToken exchanges a valid refresh token for a fresh access token.
//
// @Summary      Renovação do token de acesso
// @Tags         auth
// @Router       /api/auth/token/refresh [post]
func RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req refreshReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Refresh == "" {
		http.Error(w, "refresh token required", http.StatusBadRequest)
		return
	}

	claims, err := middleware.ParseRefreshToken(req.Refresh)
	if err != nil {
		http.Error(w, "invalid or expired refresh token", http.StatusUnauthorized)
		return
	}

	var u models.User
	if err := config.DB.First(&u, "id = ?", claims.UserID).Error; err != nil {
		http.Error(w, "invalid or expired refresh token", http.StatusUnauthorized)
		return
	}

	pair, err := middleware.GenerateTokenPair(&u)
	if err != nil {
		http.Error(w, "couldn't create token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"access": pair.Access})
}

// Me returns the authenticated caller's profile.
//
// @Summary      Perfil do usuário autenticado
// @Tags         auth
// @Router       /api/auth/me [get]
func Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
