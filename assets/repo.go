package assets

import (
	"copy_icon/cfg"
	"copy_icon/util/copier"

	"github.com/sirupsen/logrus"
)

// repo represents dependencies holder for this package
type repo struct {
	log *logrus.Logger
	cfg cfg.Root
}

// NewRepo returns new dependencies holder for this package.
//
// Keeps it's own copy of <cfg>, so the caller can not change the target list later.
func NewRepo(log *logrus.Logger, cfg cfg.Root) repo {
	return repo{log: log, cfg: copier.PDeep(cfg)}
}

// Log used to satisfy deps.Global interface
func (r repo) Log() *logrus.Logger {
	return r.log
}

// Cfg used to satisfy deps.Global interface
func (r repo) Cfg() cfg.Root {
	return r.cfg
}
