package utils

import (
	"go.uber.org/fx"

	"github.com/SCR01/chaintrace/internal/utils/log"
	"github.com/SCR01/chaintrace/internal/utils/randutil"
	"github.com/SCR01/chaintrace/internal/utils/tally"
	"github.com/SCR01/chaintrace/internal/utils/timeutil"
	"github.com/SCR01/chaintrace/internal/utils/tracer"
)

var Module = fx.Options(
	log.Module,
	randutil.Module,
	tally.Module,
	timeutil.Module,
	tracer.Module,
)
