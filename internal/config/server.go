package config

type ServerConfig struct {
	GRPCAddr string
}

func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		GRPCAddr: getEnv("GRPC_ADDR", ":50051"),
	}
}
