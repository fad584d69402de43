package internal

import (
	"fmt"
	"presence-lab/errors"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

const (
	StoreMemory = "memory"
	StoreBadger = "badger"

	// DefaultCommandPrefix can't be expressed as an env tag default, the comma is the tag separator.
	DefaultCommandPrefix = ","
)

var validate = validator.New()

type Config struct {
	Token           string `env:"DISCORD_TOKEN"`
	StaffRoleName   string `env:"STAFF_ROLE_NAME,default=Staff" validate:"required"`
	CommandPrefix   string `env:"COMMAND_PREFIX"`
	SummaryLimit    int    `env:"SUMMARY_LIMIT,default=5" validate:"min=1,max=24"`
	StoreBackend    string `env:"STORE_BACKEND,default=memory" validate:"oneof=memory badger"`
	EventBufferSize int    `env:"EVENT_BUFFER_SIZE,default=64" validate:"min=1"`
	CensoredWords   string `env:"CENSORED_WORDS"`
	CensorCharacter string `env:"CENSOR_CHARACTER,default=*"`
	MetricsAddr     string `env:"METRICS_ADDR" validate:"omitempty,hostname_port"`
	LogLevel        string `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
}

// LoadConfig decodes the environment and validates it.
// A missing token is reported as ErrMissingToken so the caller can exit before connecting.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if config.CommandPrefix == "" {
		config.CommandPrefix = DefaultCommandPrefix
	}
	config.LogLevel = strings.ToUpper(config.LogLevel)
	return config, config.Validate()
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return errors.ErrMissingToken
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if _, err := CharacterRune(c.CensorCharacter); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	return nil
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CENSOR_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
