package main

import (
	"flag"
	"log"
	"strings"

	"clubfund/config"
	"clubfund/middleware"
	"clubfund/router"
	"clubfund/service"
	"clubfund/store"
)

// @title Club Fund Tracker API
// @version 1.0
// @description A small club fund tracker: members submit payment claims, an admin approves or rejects them, approved claims join the ledger next to expenses.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "path to an external config file (optional)")
	flag.StringVar(&configFile, "c", "", "path to an external config file (shorthand)")
	flag.StringVar(&port, "port", "", "listen port, e.g. 8080 or :8080")
	flag.StringVar(&port, "p", "", "listen port (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&showVersion, "v", false, "print version (shorthand)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("club fund tracker v1.0.0")
		return
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("loading config failed: %v", err)
	}

	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("port set from command line: %s", port)
	}

	config.PrintConfig()

	st, err := store.NewFileStore(cfg.Data.Dir)
	if err != nil {
		log.Fatalf("initializing store failed: %v", err)
	}

	// seed the admin account into an empty user collection
	identity := service.NewIdentityService(st)
	if err := identity.Bootstrap(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatalf("bootstrapping admin user failed: %v", err)
	}

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg, st)

	log.Printf("==========================================")
	log.Printf("  club fund tracker started")
	log.Printf("==========================================")
	log.Printf("  API:      http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
