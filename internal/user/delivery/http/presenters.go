package http

import (
	"time"

	"campus-lostfound/internal/model"
	"campus-lostfound/internal/user"
)

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (req registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (req loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}
}

type userResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type authResp struct {
	User  userResp `json:"user"`
	Token string   `json:"token"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func (h *handler) newAuthResp(out user.AuthOutput) authResp {
	return authResp{
		User:  newUserResp(out.User),
		Token: out.Token,
	}
}

func (h *handler) newDetailResp(out user.DetailOutput) userResp {
	return newUserResp(out.User)
}
