// Package families enumerates the built-in model family modules.
package families

import (
	"github.com/vk/trainconfgo/internal/families/gpt3"
	"github.com/vk/trainconfgo/internal/families/llama"
	"github.com/vk/trainconfgo/internal/families/mistral"
	"github.com/vk/trainconfgo/internal/families/mixtral"
	"github.com/vk/trainconfgo/internal/registry"
)

// Core returns the model family modules that ship with the application.
func Core() []registry.Module {
	return []registry.Module{
		gpt3.Module{},
		llama.Module{},
		mistral.Module{},
		mixtral.Module{},
	}
}
