package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeFile - утилита записи временного файла конфигурации.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

// chdir - смена текущего рабочего каталога с автоматическим откатом.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// Полный корректный YAML.
const sampleYAML = `
env: "prod"
http:
  host: "127.0.0.1"
  port: "8080"
grpc:
  host: "127.0.0.1"
  port: "6000"
api:
  base_url: "http://hn.local/api/v1"
  timeout: "3s"
search:
  default_term: "Go"
  storage_key: "user-1"
storage:
  driver: "redis"
  redis_url: "redis://localhost:6379/0"
  redis_prefix: "test:"
timeouts:
  service: "7s"
`

// Минимальный YAML: остальные поля берутся из дефолтов.
const minimalYAML = `
env: "dev"
`

// Некорректный YAML - для проверки ошибок парсинга.
const brokenYAML = `
api:
  base_url: ["http://broken"
`

// TestAddr - проверяем, что Addr() корректно собирает host:port.
func TestAddr(t *testing.T) {
	t.Parallel()

	require.Equal(t, "127.0.0.1:50056", GRPCConfig{Host: "127.0.0.1", Port: "50056"}.Addr())
	require.Equal(t, "0.0.0.0:50086", HTTPConfig{Host: "0.0.0.0", Port: "50086"}.Addr())
}

// TestLoad_WithExplicitPath_OK - явный путь имеет высший приоритет.
func TestLoad_WithExplicitPath_OK(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	require.Equal(t, "127.0.0.1:6000", cfg.GRPC.Addr())
	require.Equal(t, "http://hn.local/api/v1", cfg.API.BaseURL)
	require.Equal(t, 3*time.Second, cfg.API.Timeout)
	require.Equal(t, "Go", cfg.Search.DefaultTerm)
	require.Equal(t, "user-1", cfg.Search.StorageKey)
	require.Equal(t, StorageRedis, cfg.Storage.Driver)
	require.Equal(t, "redis://localhost:6379/0", cfg.Storage.RedisURL)
	require.Equal(t, "test:", cfg.Storage.RedisPrefix)
	require.Equal(t, 7*time.Second, cfg.Timeouts.Service)
}

// TestLoad_WithExplicitPath_FileDoesNotExist - явный путь на несуществующий файл.
func TestLoad_WithExplicitPath_FileDoesNotExist(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Load(missing)
	require.Error(t, err)
	require.Contains(t, err.Error(), "config file does not exist")
}

// TestLoad_WithExplicitPath_BrokenYAML - битый YAML по явному пути.
func TestLoad_WithExplicitPath_BrokenYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "broken.yaml", brokenYAML)

	_, err := Load(cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config")
}

// TestLoad_WithCONFIG_PATH_Defaults - путь из CONFIG_PATH, остальное из дефолтов.
func TestLoad_WithCONFIG_PATH_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfgPath := writeFile(t, t.TempDir(), "from_env_path.yaml", minimalYAML)
	t.Setenv("CONFIG_PATH", cfgPath)

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "0.0.0.0:50086", cfg.HTTP.Addr())
	require.Equal(t, "0.0.0.0:50056", cfg.GRPC.Addr())
	require.Equal(t, "https://hn.algolia.com/api/v1", cfg.API.BaseURL)
	require.Equal(t, 10*time.Second, cfg.API.Timeout)
	require.Equal(t, "React", cfg.Search.DefaultTerm)
	require.Equal(t, "search", cfg.Search.StorageKey)
	require.Equal(t, StorageMemory, cfg.Storage.Driver)
	require.Equal(t, "stories:term:", cfg.Storage.RedisPrefix)
	require.Equal(t, 15*time.Second, cfg.Timeouts.Service)
}

// TestLoad_WithLocalYAML_OK - если нет CONFIG_PATH, берётся ./local.yaml.
func TestLoad_WithLocalYAML_OK(t *testing.T) {
	chdir(t, t.TempDir())
	writeFile(t, ".", "local.yaml", sampleYAML)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "Go", cfg.Search.DefaultTerm)
}

// TestLoad_EnvOnly_OK - конфигурация полностью из ENV без YAML-файлов.
func TestLoad_EnvOnly_OK(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	t.Setenv("ENV", "dev")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("API_BASE_URL", "http://env.local/api")
	t.Setenv("API_TIMEOUT", "2s")
	t.Setenv("SEARCH_DEFAULT_TERM", "Vue")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://env/db")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "9090", cfg.HTTP.Port)
	require.Equal(t, "http://env.local/api", cfg.API.BaseURL)
	require.Equal(t, 2*time.Second, cfg.API.Timeout)
	require.Equal(t, "Vue", cfg.Search.DefaultTerm)
	require.Equal(t, StoragePostgres, cfg.Storage.Driver)
	require.Equal(t, "postgres://env/db", cfg.Storage.PostgresURL)
}

// TestLoad_Priority_ExplicitWinsOverEnvAndLocal - явный путь важнее CONFIG_PATH и local.yaml.
func TestLoad_Priority_ExplicitWinsOverEnvAndLocal(t *testing.T) {
	dir := t.TempDir()

	explicit := writeFile(t, dir, "explicit.yaml", `
search: { default_term: "explicit" }
`)
	badEnvPath := writeFile(t, dir, "env_bad.yaml", brokenYAML)
	t.Setenv("CONFIG_PATH", badEnvPath)
	writeFile(t, dir, "local.yaml", `
search: { default_term: "local" }
`)

	chdir(t, dir)

	cfg, err := Load(explicit)
	require.NoError(t, err)
	require.Equal(t, "explicit", cfg.Search.DefaultTerm)
}

// TestLoad_Priority_ENVWinsOverLocal - CONFIG_PATH важнее local.yaml.
func TestLoad_Priority_ENVWinsOverLocal(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, dir, "local.yaml", `
search: { default_term: "local" }
`)
	envPath := writeFile(t, dir, "env.yaml", `
search: { default_term: "from-env" }
`)
	t.Setenv("CONFIG_PATH", envPath)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Search.DefaultTerm)
}

// TestLoad_Dotenv - значения из ./.env подхватываются, но не перекрывают ENV.
func TestLoad_Dotenv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("API_TIMEOUT", "4s")

	writeFile(t, dir, ".env", "SEARCH_DEFAULT_TERM=Svelte\nAPI_TIMEOUT=9s\n")
	t.Cleanup(func() { _ = os.Unsetenv("SEARCH_DEFAULT_TERM") })

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "Svelte", cfg.Search.DefaultTerm)
	require.Equal(t, 4*time.Second, cfg.API.Timeout)
}

// TestLoad_Validate - невалидные значения отклоняются.
func TestLoad_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"relative base url", `api: { base_url: "/api/v1" }`, "api.base_url"},
		{"ftp base url", `api: { base_url: "ftp://hn.local" }`, "api.base_url"},
		{"blank default term", `search: { default_term: "   " }`, "search.default_term is required"},
		{"reserved char in term", `search: { default_term: "a&b" }`, "must not contain"},
		{"negative timeout", `api: { timeout: "-1s" }`, "api.timeout"},
		{"unknown driver", `storage: { driver: "mongo" }`, "storage.driver"},
		{"redis without url", `storage: { driver: "redis" }`, "storage.redis_url"},
		{"postgres without url", `storage: { driver: "postgres" }`, "storage.postgres_url"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, t.TempDir(), "cfg.yaml", tc.yaml)
			_, err := Load(path)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

// TestMustLoad_Panics - MustLoad паникует при ошибке загрузки.
func TestMustLoad_Panics(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	require.Panics(t, func() { _ = MustLoad(missing) })
}
