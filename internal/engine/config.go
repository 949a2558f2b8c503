package engine

// Config carries the scoring weights and admission limits. The engine holds
// no other state; inject one at construction instead of mutating globals.
type Config struct {
	AcademicWeight           float64
	CertificateWeight        float64
	ExtraCertificateBonus    float64
	ExtraCertificateBonusCap float64
	ExperienceWeight         float64
	ExperienceCapYears       float64

	// InstitutionLimit is the maximum number of non-withdrawn applications
	// a student may hold at a single institution.
	InstitutionLimit int
}

func DefaultConfig() Config {
	return Config{
		AcademicWeight:           10,
		CertificateWeight:        5,
		ExtraCertificateBonus:    1,
		ExtraCertificateBonusCap: 3,
		ExperienceWeight:         2,
		ExperienceCapYears:       10,
		InstitutionLimit:         2,
	}
}

type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	if cfg.InstitutionLimit <= 0 {
		cfg.InstitutionLimit = DefaultConfig().InstitutionLimit
	}
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Config {
	return e.cfg
}
