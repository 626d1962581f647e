package app

import module "github.com/decisionroom/decisionroom/internal/services/web/module"

// Config captures the composition inputs for the web root handler.
type Config struct {
	Modules []module.Module
}
