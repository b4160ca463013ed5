package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authgate/internal/authrpc"
	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/models"
	"github.com/dmitrijs2005/authgate/internal/server/services"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ authrpc.AuthServiceServer = (*GRPCServer)(nil)

func (s *GRPCServer) RegisterUser(ctx context.Context, req *authrpc.RegisterUserRequest) (*authrpc.User, error) {

	s.logger.Info(ctx, "Registration request", "email", req.Email)

	user, err := s.users.Register(ctx, services.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})

	if err != nil {
		switch {
		case errors.Is(err, common.ErrIdentityExists):
			return nil, status.Error(codes.AlreadyExists, common.ErrIdentityExists.Error())
		case errors.Is(err, common.ErrorValidation):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		default:
			s.logger.Error(ctx, err.Error())
			return nil, status.Error(codes.Internal, common.ErrorInternal.Error())
		}
	}

	out := toWireUser(*user)
	return &out, nil
}

func (s *GRPCServer) LoginUser(ctx context.Context, req *authrpc.LoginUserRequest) (*authrpc.LoginUserResponse, error) {

	s.logger.Info(ctx, "Login request", "email", req.Email)

	user, ok := s.users.Authenticate(ctx, req.Email, req.Password)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	}

	token, err := s.tokens.Issue(auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID},
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
	})
	if err != nil {
		s.logger.Error(ctx, "error signing token", "error", err)
		return nil, status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	}

	return &authrpc.LoginUserResponse{
		AccessToken: token,
		User: authrpc.UserSummary{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	}, nil
}

// ValidateToken never fails: an unusable token yields a nil user.
func (s *GRPCServer) ValidateToken(ctx context.Context, req *authrpc.ValidateTokenRequest) (*authrpc.ValidateTokenResponse, error) {

	claims, ok := s.tokens.Verify(req.Token)
	if !ok {
		return &authrpc.ValidateTokenResponse{}, nil
	}

	if !s.opts.ValidateAgainstStore {
		view := claimsView(claims)
		return &authrpc.ValidateTokenResponse{User: &view}, nil
	}

	user, found := s.users.Lookup(ctx, claims.Email)
	if !found || !user.IsActive || user.ID != claims.Subject {
		return &authrpc.ValidateTokenResponse{}, nil
	}
	view := toWireUser(*user)
	return &authrpc.ValidateTokenResponse{User: &view}, nil
}

func (s *GRPCServer) GetAllUsers(ctx context.Context, _ *authrpc.GetAllUsersRequest) (*authrpc.GetAllUsersResponse, error) {

	all, err := s.users.ListAll(ctx)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, common.ErrorInternal.Error())
	}

	result := make([]authrpc.User, 0, len(all))
	for _, u := range all {
		result = append(result, toWireUser(u))
	}
	return &authrpc.GetAllUsersResponse{Users: result}, nil
}

func toWireUser(u models.PublicUser) authrpc.User {
	return authrpc.User{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// claimsView builds a user view from token claims alone. The token carries no
// activity flag or timestamps, so the user is reported active and both
// timestamps are the issue time.
func claimsView(c auth.Claims) authrpc.User {
	u := authrpc.User{
		ID:        c.Subject,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		IsActive:  true,
	}
	if c.IssuedAt != nil {
		u.CreatedAt = c.IssuedAt.Time.UTC()
		u.UpdatedAt = u.CreatedAt
	}
	return u
}
