package config

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"strings"
	"time"
)

const base16KeyLen = 16

func validateConfig(s *Struct) error {
	if len(s.Base16.Key) < base16KeyLen {
		return fmt.Errorf("config validation ['base16.key']: needs at least %d characters, got %d", base16KeyLen, len(s.Base16.Key))
	}
	if dup := lo.FindDuplicates([]byte(s.Base16.Key[:base16KeyLen])); len(dup) > 0 {
		return fmt.Errorf("config validation ['base16.key']: characters %q appear more than once", string(dup))
	}
	if s.Input.MaxSize <= 0 {
		return fmt.Errorf("config validation ['input.max_size']: must be positive, got %s", s.Input.MaxSize)
	}
	if s.Output.ConsoleLimit < 0 {
		return fmt.Errorf("config validation ['output.console_limit']: must not be negative, got %s", s.Output.ConsoleLimit)
	}
	if s.Output.SpillFile == "" {
		return fmt.Errorf("config validation ['output.spill_file']: must not be empty")
	}
	return nil
}

func ProcessString(str string) string {
	if strings.Contains(str, "$(time)") {
		str = strings.ReplaceAll(str, "$(time)", time.Now().Format("2006-01-02-15-04-05"))
	}
	if strings.Contains(str, "$(random)") {
		str = strings.ReplaceAll(str, "$(random)", uuid.New().String())
	}
	if strings.Contains(str, "$(mode)") {
		str = strings.ReplaceAll(str, "$(mode)", Mode)
	}
	return str
}
