package user

import "campus-lostfound/internal/model"

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthOutput struct {
	User  model.User
	Token string
}

type DetailOutput struct {
	User model.User
}
