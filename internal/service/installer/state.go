package installer

// EnvFile is the configuration the wizard collects, tagged for .env rendering.
type EnvFile struct {
	BackendURL     string `env:"RAG_BACKEND_URL"`
	TelegramToken  string `env:"TELEGRAM_TOKEN"`
	DBPath         string `env:"HISTORY_DB_PATH"`
	EnableTelegram bool   `env:"ENABLE_TELEGRAM"`
}

type InstallState struct {
	Env EnvFile
}

func NewInstallState() *InstallState {
	return &InstallState{}
}
