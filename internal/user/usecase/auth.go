package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"campus-lostfound/internal/user"
	"campus-lostfound/internal/user/repository"
)

func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || input.Email == "" || len(input.Password) < 6 {
		return user.AuthOutput{}, user.ErrInvalidPayload
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Register.GenerateFromPassword: %v", err)
		return user.AuthOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if err == repository.ErrDuplicateEmail {
			return user.AuthOutput{}, user.ErrEmailTaken
		}
		uc.l.Errorf(ctx, "user.usecase.Register.CreateUser: %v", err)
		return user.AuthOutput{}, err
	}

	tok, err := uc.tokens.Generate(u.ID, u.Email)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Register.Generate: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{User: u, Token: tok}, nil
}

func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	u, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Login.GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if u.ID == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)) != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	tok, err := uc.tokens.Generate(u.ID, u.Email)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Login.Generate: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{User: u, Token: tok}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (user.DetailOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Detail.GetOneUser: %v", err)
		return user.DetailOutput{}, err
	}
	if u.ID == "" {
		return user.DetailOutput{}, user.ErrUserNotFound
	}
	return user.DetailOutput{User: u}, nil
}
