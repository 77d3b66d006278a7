package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"github.com/edugestion/sgc-api/config"
	"github.com/edugestion/sgc-api/database"
	"github.com/edugestion/sgc-api/logger"
	"github.com/edugestion/sgc-api/util/crypto"
	"github.com/edugestion/sgc-api/web"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			_ = server.Stop()
			_ = database.CloseDB()
			logger.CloseLogger()
			return
		}
	}
}

func showAccounts() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	accounts, err := database.NewAccountRepository().ListAll()
	if err != nil {
		fmt.Println("list accounts failed:", err)
		return
	}
	fmt.Println("current accounts as follows:")
	for _, account := range accounts {
		fmt.Printf("%d\t%s\t%s\t%s\n", account.Id, account.Email, account.Role, account.Name)
	}
}

func resetPassword(email string, password string) {
	if email == "" || password == "" {
		fmt.Println("email and password are required")
		return
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	repo := database.NewAccountRepository()
	account, err := repo.FindByEmail(email)
	if err != nil {
		fmt.Println("account not found:", email)
		return
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		fmt.Println("hash password failed:", err)
		return
	}

	if err := repo.UpdatePassword(account.Id, hash); err != nil {
		fmt.Println("reset password failed:", err)
		return
	}
	fmt.Println("reset password success")
}

func main() {
	// Mirror the original deployment: a local .env file overrides nothing
	// already present in the environment.
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use: "sgc-api",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Manage accounts",
	}

	var showCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current accounts",
		Run: func(cmd *cobra.Command, args []string) {
			showAccounts()
		},
	}

	var resetCmd = &cobra.Command{
		Use:   "reset-password",
		Short: "Reset the password of an account",
		Run: func(cmd *cobra.Command, args []string) {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			resetPassword(email, password)
		},
	}

	resetCmd.Flags().String("email", "", "account email")
	resetCmd.Flags().String("password", "", "new password")

	settingCmd.AddCommand(showCmd, resetCmd)

	rootCmd.AddCommand(runCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
