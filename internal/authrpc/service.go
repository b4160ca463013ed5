package authrpc

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "authgate.auth.v1.AuthService"

const (
	RegisterUserFullMethod  = "/" + ServiceName + "/RegisterUser"
	LoginUserFullMethod     = "/" + ServiceName + "/LoginUser"
	ValidateTokenFullMethod = "/" + ServiceName + "/ValidateToken"
	GetAllUsersFullMethod   = "/" + ServiceName + "/GetAllUsers"
)

// AuthServiceServer is implemented by the authentication service.
type AuthServiceServer interface {
	RegisterUser(context.Context, *RegisterUserRequest) (*User, error)
	LoginUser(context.Context, *LoginUserRequest) (*LoginUserResponse, error)
	ValidateToken(context.Context, *ValidateTokenRequest) (*ValidateTokenResponse, error)
	GetAllUsers(context.Context, *GetAllUsersRequest) (*GetAllUsersResponse, error)
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthServiceDesc, srv)
}

// AuthServiceDesc describes the service for grpc.Server.RegisterService.
var AuthServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterUser",
			Handler:    unaryHandler(RegisterUserFullMethod, AuthServiceServer.RegisterUser),
		},
		{
			MethodName: "LoginUser",
			Handler:    unaryHandler(LoginUserFullMethod, AuthServiceServer.LoginUser),
		},
		{
			MethodName: "ValidateToken",
			Handler:    unaryHandler(ValidateTokenFullMethod, AuthServiceServer.ValidateToken),
		},
		{
			MethodName: "GetAllUsers",
			Handler:    unaryHandler(GetAllUsersFullMethod, AuthServiceServer.GetAllUsers),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "authgate/auth/v1",
}

func unaryHandler[Req, Resp any](fullMethod string, call func(AuthServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AuthServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AuthServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AuthServiceClient is the client stub. Every call uses the JSON codec.
type AuthServiceClient interface {
	RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*User, error)
	LoginUser(ctx context.Context, in *LoginUserRequest, opts ...grpc.CallOption) (*LoginUserResponse, error)
	ValidateToken(ctx context.Context, in *ValidateTokenRequest, opts ...grpc.CallOption) (*ValidateTokenResponse, error)
	GetAllUsers(ctx context.Context, in *GetAllUsersRequest, opts ...grpc.CallOption) (*GetAllUsersResponse, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc: cc}
}

func (c *authServiceClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*User, error) {
	out := new(User)
	if err := c.invoke(ctx, RegisterUserFullMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) LoginUser(ctx context.Context, in *LoginUserRequest, opts ...grpc.CallOption) (*LoginUserResponse, error) {
	out := new(LoginUserResponse)
	if err := c.invoke(ctx, LoginUserFullMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) ValidateToken(ctx context.Context, in *ValidateTokenRequest, opts ...grpc.CallOption) (*ValidateTokenResponse, error) {
	out := new(ValidateTokenResponse)
	if err := c.invoke(ctx, ValidateTokenFullMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) GetAllUsers(ctx context.Context, in *GetAllUsersRequest, opts ...grpc.CallOption) (*GetAllUsersResponse, error) {
	out := new(GetAllUsersResponse)
	if err := c.invoke(ctx, GetAllUsersFullMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(Subtype)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}
