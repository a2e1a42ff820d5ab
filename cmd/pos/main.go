package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/api"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/cartstore"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/catalog"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/checkout"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/config"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/notify"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/receipt"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/session"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/tui"
	"github.com/NahlBee97/komputama-kasir-frontend/pkg/logger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer zlog.Sync()

	sess := session.New()
	client := api.NewClient(cfg.APIURL, sess, cfg.RequestTimeout, zlog)

	// Catalog cache: Redis when configured, in-process otherwise.
	ctx := context.Background()
	var cache catalog.ProductCache = catalog.NewMemoryCache(15 * time.Minute)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Redis connection failed: %v", err)
		}
		cache = catalog.NewRedisCache(redisClient)
		zlog.Infow("using redis catalog cache", "addr", cfg.RedisAddr)
	}
	cat := catalog.NewService(client, cache, zlog)

	if len(cfg.KafkaBrokers) > 0 {
		listener := catalog.NewListener(cat, zlog, cfg.KafkaBrokers...)
		defer listener.Close()
		listenCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go listener.Run(listenCtx)
		zlog.Infow("listening for product updates", "brokers", cfg.KafkaBrokers)
	}

	user, err := login(ctx, client)
	if err != nil {
		log.Fatalf("Login gagal: %v", err)
	}
	sess.Set(user.User, user.Token)
	zlog.Infow("logged in", "user_id", user.User.ID, "name", user.User.Name)

	toasts := &notify.Memory{}
	store := cartstore.New(client, toasts, zlog, time.Duration(cfg.DebounceMS)*time.Millisecond)

	printer, err := receipt.NewFilePrinter(cfg.ReceiptDir)
	if err != nil {
		log.Fatalf("Failed to create receipt dir: %v", err)
	}
	renderer := receipt.NewRenderer(receipt.Header{
		Name:  cfg.StoreName,
		Line1: cfg.StoreLine1,
		Line2: cfg.StoreLine2,
	})
	co := checkout.NewService(client, store, renderer, printer, zlog)

	model := tui.New(store, cat, co, toasts, user.User)
	program := tea.NewProgram(model, tea.WithAltScreen())
	store.SetOnChange(func() {
		program.Send(tui.CartChangedMsg{})
	})

	if _, err := program.Run(); err != nil {
		log.Fatalf("Terminal error: %v", err)
	}

	store.FlushPending(ctx)
	if err := client.Logout(ctx); err != nil {
		zlog.Warnw("logout failed", "error", err)
	}
	zlog.Infow("session closed")
}

// login prompts on stdin before the alternate screen takes over.
func login(ctx context.Context, client *api.Client) (*api.LoginResponse, error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("ID kasir: ")
	idLine, err := reader.ReadString('\n')
	if err != nil {
		return nil, err
	}
	userID, err := strconv.ParseInt(strings.TrimSpace(idLine), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("ID kasir harus angka")
	}

	fmt.Print("PIN: ")
	pinLine, err := reader.ReadString('\n')
	if err != nil {
		return nil, err
	}

	return client.Login(ctx, userID, strings.TrimSpace(pinLine))
}
