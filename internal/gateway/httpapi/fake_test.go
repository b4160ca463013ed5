package httpapi

import (
	"context"
	"sync/atomic"

	"github.com/dmitrijs2005/authgate/internal/authrpc"
)

// fakeClient is an in-memory client.AuthClient with canned answers.
type fakeClient struct {
	registerUser *authrpc.User
	registerErr  error

	loginResp *authrpc.LoginUserResponse
	loginErr  error

	validUser   *authrpc.User
	validateErr error
	validates   atomic.Int32
	lastToken   atomic.Value

	users    []authrpc.User
	usersErr error
	lists    atomic.Int32

	readyErr error

	lastRegister *authrpc.RegisterUserRequest
}

func (f *fakeClient) Register(_ context.Context, req *authrpc.RegisterUserRequest) (*authrpc.User, error) {
	f.lastRegister = req
	return f.registerUser, f.registerErr
}

func (f *fakeClient) Login(context.Context, string, string) (*authrpc.LoginUserResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeClient) ValidateToken(_ context.Context, token string) (*authrpc.User, error) {
	f.validates.Add(1)
	f.lastToken.Store(token)
	return f.validUser, f.validateErr
}

func (f *fakeClient) ListUsers(context.Context) ([]authrpc.User, error) {
	f.lists.Add(1)
	return f.users, f.usersErr
}

func (f *fakeClient) Ready(context.Context) error {
	return f.readyErr
}
