package main

import (
	"context"
	"flag"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Sirdoh/NFTArtGallery/gallery/app"
	"github.com/Sirdoh/NFTArtGallery/gallery/model"
	"github.com/Sirdoh/NFTArtGallery/lib/env"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/logging"
	"github.com/zenazn/goji/bind"
	"github.com/zenazn/goji/graceful"
	"goji.io"
)

var actFlag string

var envFlag string
var dsnFlag string
var hstFlag string
var prtFlag string
var admFlag string
var crtFlag string
var keyFlag string

var usrFlag string
var pasFlag string

func init() {
	flag.StringVar(&actFlag, "action",
		"run", "The action to perform")

	flag.StringVar(&envFlag, "env",
		"qa", "The environment to run in (qa, production), default: qa")
	flag.StringVar(&dsnFlag, "db_dsn",
		"", "The DSN of the database to use, default: sqlite3://~/.gallery/gallery-$env.db")
	flag.StringVar(&hstFlag, "host",
		"", "The externally accessible host name of this gallery, default: none (required)")
	flag.StringVar(&prtFlag, "port",
		"", "The port to listen on, default: 4207 (production), 4208 (qa)")
	flag.StringVar(&admFlag, "admin",
		"", "The username of the gallery administrator, default: none (required to run)")
	flag.StringVar(&crtFlag, "cert_file",
		"", "The TLS certificate file to serve with, default: none (no TLS)")
	flag.StringVar(&keyFlag, "key_file",
		"", "The TLS key file to serve with, default: none (no TLS)")

	flag.StringVar(&usrFlag, "username",
		"foo", "The user name of the user to upsert")
	flag.StringVar(&pasFlag, "password",
		"bar", "The password of the user to upsert")

	bind.WithFlag()
	if fl := log.Flags(); fl&log.Ltime != 0 {
		log.SetFlags(fl | log.Lmicroseconds)
	}
	graceful.DoubleKickWindow(2 * time.Second)
}

// Serve starts the given mux using reasonable defaults.
func Serve(mux *goji.Mux) {
	ServeListener(mux, bind.Default())
}

// ServeListener is like Serve, but runs `mux` on top of an arbitrary
// net.Listener.
func ServeListener(mux *goji.Mux, listener net.Listener) {
	// Install our handler at the root of the standard net/http default mux.
	// This allows packages like expvar to continue working as expected.
	http.Handle("/", mux)

	log.Println("Starting Goji on", listener.Addr())

	graceful.HandleSignals()
	bind.Ready()
	graceful.PreHook(func() { log.Printf("Goji received signal, gracefully stopping") })
	graceful.PostHook(func() { log.Printf("Goji stopped") })

	err := graceful.Serve(listener, http.DefaultServeMux)

	if err != nil {
		log.Fatal(err)
	}

	graceful.Wait()
}

func main() {
	if !flag.Parsed() {
		flag.Parse()
	}

	ctx, err := app.BackgroundContextFromFlags(
		envFlag, dsnFlag, hstFlag, prtFlag, admFlag, crtFlag, keyFlag,
	)
	if err != nil {
		log.Fatal(errors.Details(err))
	}

	validActions := []string{"run", "create_user"}
	switch actFlag {
	case "run":
		mux, err := app.Build(ctx)
		if err != nil {
			log.Fatal(errors.Details(err))
		}
		// Production (and TLS) serving honors the `-port` flag; QA serving
		// without TLS binds per the zenazn bind flag.
		if env.Get(ctx).Environment == env.Production || crtFlag != "" {
			err := app.Serve(ctx, mux)
			if err != nil {
				log.Fatal(errors.Details(err))
			}
		} else {
			Serve(mux)
		}
	case "create_user":
		createUser(ctx, usrFlag, pasFlag)
	default:
		log.Fatalf("Invalid action `%s`, valid actions are: %s",
			actFlag, strings.Join(validActions, ", "))
	}
}

func createUser(
	ctx context.Context,
	username string,
	password string,
) {
	user, err := model.LoadUserByUsername(ctx, username)
	if err != nil {
		log.Fatal(err)
	}

	if user != nil {
		logging.Logf(ctx, "Updating user: %s", username)
		err := user.UpdatePassword(ctx, password)
		if err != nil {
			log.Fatal(errors.Details(err))
		}
		err = user.Save(ctx)
		if err != nil {
			log.Fatal(errors.Details(err))
		}
	} else {
		logging.Logf(ctx, "Creating user: %s", username)
		_, err := model.CreateUser(ctx, username, password)
		if err != nil {
			log.Fatal(errors.Details(err))
		}
	}
}
