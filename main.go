package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"backend/configs"
	"backend/middlewares"
	"backend/pkg/resp"
	"backend/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()

	// Error timestamps render in the configured zone.
	if cfg.TimeZone != "" {
		loc, err := time.LoadLocation(cfg.TimeZone)
		if err != nil {
			log.Printf("unknown time zone %q, using system zone", cfg.TimeZone)
		} else {
			resp.SetZone(loc)
		}
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, configs.DB())

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
