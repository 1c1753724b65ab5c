package config

import (
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
)

type Config struct {
	// Secrets come from the environment or a config file, never from argv.
	OpenAIKey  string `hcl:"openai_api_key" env:"OPENAI_API_KEY" flag:"-" required:"true" usage:"completion service credential"`
	WebhookURL string `hcl:"webhook_url" env:"WEBHOOK_URL" flag:"-" required:"true" usage:"Slack incoming webhook URL"`

	ModelName   string  `hcl:"model_name" env:"MODEL_NAME" flag:"model_name" default:"gpt-3.5-turbo" usage:"completion model id"`
	Temperature float32 `hcl:"temperature" env:"TEMPERATURE" flag:"temperature" default:"0" usage:"sampling temperature"`
	MaxTokens   int     `hcl:"max_tokens" env:"MAX_TOKENS" flag:"max_tokens" default:"512" usage:"maximum completion tokens"`

	Date       string `hcl:"date" env:"DATE" flag:"date" usage:"UTC day to fetch, YYYYMMDD (default: today)"`
	Category   string `hcl:"category" env:"CATEGORY" flag:"category" default:"quant-ph" usage:"arXiv category"`
	MaxResults int    `hcl:"max_results" env:"MAX_RESULTS" flag:"max_results" default:"2" usage:"maximum papers per run"`

	TargetLanguage string `hcl:"target_language" env:"TARGET_LANGUAGE" flag:"target_language" default:"Japanese" usage:"language to translate abstracts into"`

	Channel  string `hcl:"channel" env:"CHANNEL" flag:"channel" default:"#paper-feed" usage:"Slack channel override"`
	Username string `hcl:"username" env:"USERNAME" flag:"username" default:"ArxivSpotlighter" usage:"display name of the webhook sender"`
	Icon     string `hcl:"icon" env:"ICON" flag:"icon" default:":+1:" usage:"emoji icon of the webhook sender"`

	AIType    string        `hcl:"ai_type" env:"AI_TYPE" flag:"ai_type" default:"openai" usage:"completion backend: openai or ollama"`
	AIBaseURL string        `hcl:"ai_base_url" env:"AI_BASE_URL" flag:"ai_base_url" usage:"OpenAI-compatible base URL, or ollama host"`
	AITimeout time.Duration `hcl:"ai_timeout" env:"AI_TIMEOUT" flag:"ai_timeout" default:"5m"`
}

// Load reads configuration from optional HCL files, the environment and the
// given command-line arguments (in that order of precedence). It returns an
// error when a required secret is missing, so the process can fail fast
// before any work is done.
func Load(args []string) (Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		Args:  args,
		Files: []string{"./config.hcl", "./config.local.hcl", "$HOME/.config/paper-spotlight/config.hcl"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".hcl": aconfighcl.New(),
		},
	})

	if err := loader.Load(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
