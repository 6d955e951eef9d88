package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng:
// địa chỉ server, cơ sở dữ liệu, JWT, dịch vụ lưu trữ media.
type Configuration struct {
	InitMode bool   `env:"INITMODE" envDefault:"false"` // Chế độ khởi tạo
	Address  string `env:"ADDRESS" envDefault:":8080"`  // Địa chỉ server

	// JWT Configuration
	JwtAccessSecret   string `env:"JWT_ACCESS_SECRET,required"`          // Bí mật ký access token
	JwtRefreshSecret  string `env:"JWT_REFRESH_SECRET,required"`         // Bí mật ký refresh token
	JwtAccessExpiry   int    `env:"JWT_ACCESS_EXPIRY" envDefault:"900"`  // Thời gian sống access token (giây)
	JwtRefreshExpiry  int    `env:"JWT_REFRESH_EXPIRY" envDefault:"864000"` // Thời gian sống refresh token (giây)

	// MongoDB Configuration
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"` // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`         // Tên cơ sở dữ liệu

	// Media Storage Configuration (S3-compatible)
	Storage_Endpoint  string `env:"STORAGE_ENDPOINT,required"`            // Endpoint dịch vụ lưu trữ
	Storage_AccessKey string `env:"STORAGE_ACCESS_KEY,required"`          // Access key
	Storage_SecretKey string `env:"STORAGE_SECRET_KEY,required"`          // Secret key
	Storage_Bucket    string `env:"STORAGE_BUCKET" envDefault:"media"`    // Bucket chứa media
	Storage_UseSSL    bool   `env:"STORAGE_USE_SSL" envDefault:"false"`   // Kết nối qua TLS
	Storage_PublicURL string `env:"STORAGE_PUBLIC_URL"`                   // Base URL công khai (CDN), rỗng = dùng endpoint

	// CORS Configuration
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials

	// Rate Limiting
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Thời gian window (giây)
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Bật/tắt rate limiting

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Đi lên từ thư mục hiện tại để tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env theo GO_ENV
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
