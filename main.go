package main

import (
	"embed"
	"flag"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"pcb-research/backend/api/route"
	"pcb-research/backend/common"
	"pcb-research/backend/model"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed frontend/dist
var buildFS embed.FS

//go:embed frontend/dist/index.html
var indexPage []byte

func main() {
	flag.Parse()
	if *common.PrintVersion {
		println(common.Version)
		os.Exit(0)
	}
	if *common.PrintHelp {
		common.PrintHelpText()
		os.Exit(0)
	}
	common.SetupGinLog()
	if err := common.InitConfig(); err != nil {
		common.FatalLog(err)
	}
	common.SysLog(common.SystemName + " " + common.Version + " started")
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the PCB database; the in-memory copy lives for the whole session
	if err := model.InitDB(); err != nil {
		common.FatalLog(err)
	}

	server := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	server.Use(cors.New(corsConfig))

	route.SetRouter(server, buildFS)
	server.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "API route not found",
			})
		} else {
			c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
		}
	})

	port := strconv.Itoa(*common.Port)
	common.SysLog("Server listening on port: " + port)
	if err := server.Run(":" + port); err != nil {
		log.Fatal("failed to start server: " + err.Error())
	}
}
