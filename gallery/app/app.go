package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"goji.io"

	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/gallery/lib/authentication"
	"github.com/Sirdoh/NFTArtGallery/lib/cert"
	"github.com/Sirdoh/NFTArtGallery/lib/db"
	"github.com/Sirdoh/NFTArtGallery/lib/env"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/livemode"
	"github.com/Sirdoh/NFTArtGallery/lib/logging"
	"github.com/Sirdoh/NFTArtGallery/lib/recoverer"
	"github.com/Sirdoh/NFTArtGallery/lib/requestlogger"

	"github.com/facebookgo/grace/gracehttp"

	// force initialization of schemas
	_ "github.com/Sirdoh/NFTArtGallery/gallery/model/schemas"
)

// BackgroundContextFromFlags initializes a background context fully loaded
// with everything that could be extracted from the flags.
func BackgroundContextFromFlags(
	envFlag string,
	dsnFlag string,
	hstFlag string,
	prtFlag string,
	admFlag string,
	crtFlag string,
	keyFlag string,
) (context.Context, error) {
	ctx := context.Background()

	galleryEnv := env.Env{
		Environment: env.QA,
		Config:      map[env.ConfigKey]string{},
	}
	if envFlag == "production" || envFlag == "prod" {
		galleryEnv.Environment = env.Production
	}
	galleryEnv.Config[gallery.EnvCfgHost] = hstFlag
	galleryEnv.Config[gallery.EnvCfgAdmin] = admFlag
	galleryEnv.Config[gallery.EnvCfgCertFile] = crtFlag
	galleryEnv.Config[gallery.EnvCfgKeyFile] = keyFlag

	port := fmt.Sprintf("%d", gallery.DefaultPort[galleryEnv.Environment])
	if prtFlag != "" {
		port = prtFlag
	}
	galleryEnv.Config[gallery.EnvCfgPort] = port

	ctx = env.With(ctx, &galleryEnv)

	galleryDB, err := db.NewDBForDSN(ctx,
		dsnFlag,
		fmt.Sprintf("sqlite3://~/.gallery/gallery-%s.db",
			env.Get(ctx).Environment))
	if err != nil {
		return nil, errors.Trace(err)
	}
	err = db.CreateDBTables(ctx, "gallery", galleryDB)
	if err != nil {
		return nil, errors.Trace(err)
	}
	ctx = db.WithDB(ctx, "gallery", galleryDB)

	return ctx, nil
}

// Build initializes the app and its web stack.
func Build(
	ctx context.Context,
) (*goji.Mux, error) {
	if gallery.GetHost(ctx) == "" {
		if env.Get(ctx).Environment == env.Production {
			return nil, errors.Trace(errors.Newf(
				"You must set the `-host` flag to the publicly accessible hostname of this gallery (placing the gallery behind a HAProxy, NGINX or similar for SSL termination in production). If you're just testing and don't have a public domain name pointing to this machine, please run with `-env=qa` and `-host=127.0.0.1`",
			))
		}
		return nil, errors.Trace(errors.Newf(
			"You must set the `-host` flag to the hostname clients can use to contact this gallery over HTTP (since you're running in QA). You can use `-host=127.0.0.1` for testing purposes.",
		))
	}
	if gallery.GetAdmin(ctx) == "" {
		return nil, errors.Trace(errors.Newf(
			"You must set the `-admin` flag to the username of the gallery administrator (create it with `-action=create_user`). Minting is reserved to the administrator.",
		))
	}

	mux := goji.NewMux()
	mux.Use(requestlogger.Middleware)
	mux.Use(recoverer.Middleware)
	mux.Use(db.Middleware(db.GetDBMap(ctx)))
	mux.Use(env.Middleware(env.Get(ctx)))
	mux.Use(livemode.Middleware)
	mux.Use(authentication.Middleware)

	logging.Logf(ctx, "Initializing: environment=%s host=%s port=%s admin=%s",
		env.Get(ctx).Environment, gallery.GetHost(ctx), gallery.GetPort(ctx),
		gallery.GetAdmin(ctx))

	(&Controller{}).Bind(mux)

	return mux, nil
}

// Serve the goji mux.
func Serve(
	ctx context.Context,
	mux *goji.Mux,
) error {

	s := &http.Server{
		Addr:         fmt.Sprintf(":%s", gallery.GetPort(ctx)),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		Handler:      mux,
	}

	// TLS is enabled when a certificate is configured (self signed in QA).
	if gallery.GetCertFile(ctx) != "" {
		s.TLSConfig = &tls.Config{
			GetCertificate: cert.GetGetCertificate(ctx,
				gallery.GetHost(ctx),
				gallery.GetCertFile(ctx),
				gallery.GetKeyFile(ctx)),
		}
	}

	logging.Logf(ctx, "Listening: port=%s", gallery.GetPort(ctx))

	err := gracehttp.Serve(s)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}
