package gallery

import (
	"context"

	"github.com/Sirdoh/NFTArtGallery/lib/env"
	"github.com/Sirdoh/NFTArtGallery/lib/logging"
)

const (
	// Version is the current version.
	Version string = "0.0.1"

	// EnvCfgHost is the env config key for the gallery host.
	EnvCfgHost env.ConfigKey = "gallery_host"
	// EnvCfgPort is the env config key for the port the gallery is listening
	// on.
	EnvCfgPort env.ConfigKey = "gallery_port"
	// EnvCfgAdmin is the env config key for the username of the gallery
	// administrator.
	EnvCfgAdmin env.ConfigKey = "gallery_admin"
	// EnvCfgCertFile is the env config key for the TLS certificate path.
	EnvCfgCertFile env.ConfigKey = "gallery_cert_file"
	// EnvCfgKeyFile is the env config key for the TLS key path.
	EnvCfgKeyFile env.ConfigKey = "gallery_key_file"
)

// DefaultPort is the port the gallery listens on by default in each
// environment.
var DefaultPort = map[env.Environment]int64{
	env.Production: 4207,
	env.QA:         4208,
}

// GetHost retrieves the gallery host from the given context.
func GetHost(
	ctx context.Context,
) string {
	return env.Get(ctx).Config[EnvCfgHost]
}

// GetPort retrieves the gallery port from the given context.
func GetPort(
	ctx context.Context,
) string {
	return env.Get(ctx).Config[EnvCfgPort]
}

// GetAdmin retrieves the admin username from the given context.
func GetAdmin(
	ctx context.Context,
) string {
	return env.Get(ctx).Config[EnvCfgAdmin]
}

// GetCertFile retrieves the TLS certificate path from the given context, if
// configured.
func GetCertFile(
	ctx context.Context,
) string {
	return env.Get(ctx).Config[EnvCfgCertFile]
}

// GetKeyFile retrieves the TLS key path from the given context, if
// configured.
func GetKeyFile(
	ctx context.Context,
) string {
	return env.Get(ctx).Config[EnvCfgKeyFile]
}

// IsAdmin returns true if the given username is the configured gallery
// administrator.
func IsAdmin(
	ctx context.Context,
	username string,
) bool {
	admin := GetAdmin(ctx)
	return admin != "" && username == admin
}

// Logf shells out to logging.Logf.
func Logf(
	ctx context.Context,
	format string,
	v ...interface{},
) {
	logging.Logf(ctx, format, v...)
}
