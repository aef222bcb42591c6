package main

import (
	"log/slog"
	"os"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/cache"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/infra/storage"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//ログはJSONで出す
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	//.envは無ければ環境変数だけで動く
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env not loaded", "err", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.History{},
		&model.HistoryItem{},
		&model.AuditLog{},
	); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//商品詳細のキャッシュ（REDIS_ADDR未設定なら無効）
	var productCache cache.Cache
	if cfg.RedisAddr != "" {
		productCache = cache.NewRedisCache(cfg.RedisAddr, "storefront")
	}

	//支払い証明の保存先
	store, err := storage.NewDiskStore(cfg.UploadDir, storage.Policy{
		MaxBytes:    cfg.MaxUploadBytes,
		AllowedExts: []string{".jpg", ".jpeg", ".png", ".pdf", ".webp"},
	})
	if err != nil {
		slog.Error("upload dir init failed", "err", err)
		os.Exit(1)
	}

	//usecaseに渡す部品
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := usecase.NewBcryptPasswordHasher(12)
	verifier := usecase.NewBcryptPasswordVerifier()

	//JWT issuer（アクセストークンのみ）
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, hasher, verifier, issuer, clock)
	productUC := usecase.NewProductUsecase(productRepo, productCache)
	cartUC := usecase.NewCartUsecase(cartRepo, cartRepo, productRepo)
	resolver := usecase.NewSnapshotResolver()
	checkoutUC := usecase.NewCheckoutUsecase(txManager, resolver, validator.NewCheckoutValidator())
	adminUC := usecase.NewAdminCheckoutUsecase(txManager)

	//Handler生成
	handlers := server.Handlers{
		Auth:          handler.NewAuthHandler(authUC),
		Product:       handler.NewProductHandler(productUC),
		Cart:          handler.NewCartHandler(cartUC),
		Checkout:      handler.NewCheckoutHandler(checkoutUC, store),
		AdminCheckout: handler.NewAdminCheckoutHandler(adminUC),
		AdminProduct:  handler.NewAdminProductHandler(productUC),
	}

	//Server起動
	slog.Info("server start", "port", cfg.Port, "env", cfg.GoEnv)
	if err := server.Start(cfg, handlers); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
