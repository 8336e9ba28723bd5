package logging

import (
	"go.uber.org/zap"
)

var Logger = zap.NewNop().Sugar()

// InitLogger configura o logger global no stderr. Sem debug só avisos e erros
// aparecem, para não misturar log com a saída da revisão.
func InitLogger(debug bool) *zap.SugaredLogger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		panic("erro ao inicializar logger: " + err.Error())
	}
	Logger = logger.Sugar()
	return Logger
}

// Sync descarrega o logger global; erros de sync no stderr são ignorados.
func Sync() {
	_ = Logger.Sync()
}
