package usecase

import (
	"github.com/bonellirj/EchoDoTTT/pkg/auditlog"
	"github.com/bonellirj/EchoDoTTT/pkg/llmprovider"
	pkgLog "github.com/bonellirj/EchoDoTTT/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	providers *llmprovider.Registry
	audit     auditlog.Logger
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	providers *llmprovider.Registry,
	audit auditlog.Logger,
) *implUseCase {
	if audit == nil {
		audit = auditlog.Nop{}
	}
	return &implUseCase{
		l:         l,
		providers: providers,
		audit:     audit,
	}
}
