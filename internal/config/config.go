// internal/config/config.go
package config

const (
	ScreenWidth  = 1280
	ScreenHeight = 800

	ParticleCount   = 150   // число частиц поля, не меняется после создания
	MaxDistance     = 150.0 // радиус отталкивания от указателя
	ReturnDivisor   = 50.0  // доля возврата к базовой позиции за кадр (1/50)
	LinkDistance    = 50.0  // максимальная длина соединительной линии
	LinkWidth       = 0.5
	PointerSentinel = -1000.0 // указатель «за экраном» до первого движения мыши

	// Начальные разбросы атрибутов частиц
	VelocitySpread = 1.5 // скорость в [-0.75, 0.75)
	SizeMin        = 1.0
	SizeSpread     = 2.0 // размер в [1, 3)
	DensityMin     = 1.0
	DensitySpread  = 30.0 // плотность в [1, 31)

	HeroFadeRatio = 0.5 // поле проявляется после половины hero-секции

	// Страница-обёртка
	NavSectionOffset = 300.0
	BadgeTopRatio    = 0.7
	BadgeBottomRatio = 0.3
	RevealThreshold  = 0.2
	RevealOffsetY    = 20.0
	TypingDelayMs    = 100
	TypingPauseMs    = 2000
	ScrollEase       = 0.15
	ScrollSnap       = 0.5
	WheelStep        = 60.0

	// Терминальный хост: одна ячейка покрывает 8×16 пикселей
	TerminalCellWidth  = 8
	TerminalCellHeight = 16
	TerminalFPS        = 30

	MaxDeltaTime = 0.06
)

var (
	// ParticlePalette — палитра частиц в виде hex-строк, разбирается через render.MustParseHex
	ParticlePalette = []string{"#64ffda", "#ffd700", "#e6f1f8"}
	BackgroundHex   = "#0a192f"
	LinkHex         = "#64ffda" // rgba(100, 255, 218, a)

	TypingTexts = []string{"Scientist", "Engineer", "Maker", "Problem Solver"}
)
