package locale

// Keys for strings outside the explanation set.
const (
	KeyPlay         = "buttons.play"
	KeyPause        = "buttons.pause"
	KeyReset        = "buttons.reset"
	KeyYes          = "result.yes"
	KeyNo           = "result.no"
	KeyUnrecognized = "warnings.unrecognized"
	KeyFrame        = "labels.frame"
	KeyLanguage     = "labels.language"
	KeyCalculating  = "labels.calculating"
)

var catalog = map[Language]map[string]string{
	English: {
		"explanations.linearSystem":      "The system satisfies superposition: scaled and summed inputs give scaled and summed outputs.",
		"explanations.nonLinearSquare":   "The output depends on a squared or multiplied input, so superposition fails.",
		"explanations.causalPastInput":   "The output depends only on present and past inputs.",
		"explanations.nonCausalFuture":   "The output depends on a future input.",
		"explanations.stableSystem":      "Bounded inputs produce bounded outputs.",
		"explanations.unstableRamp":      "A gain that grows with time lets a bounded input produce an unbounded output.",
		"explanations.memorylessCurrent": "The output depends only on the current input.",
		"explanations.memoryPastInput":   "The output depends on past samples, so the system has memory.",
		"explanations.timeInvariant":     "Shifting the input shifts the output by the same amount.",
		"explanations.timeVariant":       "The equation is multiplied by time, so a shifted input does not give a shifted output.",

		"properties.linearity":       "Linearity",
		"properties.causality":       "Causality",
		"properties.stability":       "Stability",
		"properties.memory":          "Memory",
		"properties.time_invariance": "Time invariance",

		"stability.stable":           "Stable",
		"stability.unstable":         "Unstable",
		"stability.marginallyStable": "Marginally stable",
		"order.firstOrder":           "First order",
		"order.secondOrder":          "Second order",

		KeyPlay:         "Play",
		KeyPause:        "Pause",
		KeyReset:        "Reset",
		KeyYes:          "Yes",
		KeyNo:           "No",
		KeyUnrecognized: "Expression not recognized; showing the default result",
		KeyFrame:        "Frame",
		KeyLanguage:     "English",
		KeyCalculating:  "Calculating convolution...",
	},
	Persian: {
		"explanations.linearSystem":      "سیستم از اصل برهم‌نهی پیروی می‌کند: ورودی‌های مقیاس‌شده و جمع‌شده خروجی‌های مقیاس‌شده و جمع‌شده می‌دهند.",
		"explanations.nonLinearSquare":   "خروجی به توان دوم یا حاصل‌ضرب ورودی وابسته است، پس برهم‌نهی برقرار نیست.",
		"explanations.causalPastInput":   "خروجی تنها به ورودی‌های حال و گذشته وابسته است.",
		"explanations.nonCausalFuture":   "خروجی به ورودی آینده وابسته است.",
		"explanations.stableSystem":      "ورودی‌های کران‌دار خروجی کران‌دار تولید می‌کنند.",
		"explanations.unstableRamp":      "ضریبی که با زمان رشد می‌کند باعث می‌شود ورودی کران‌دار خروجی بی‌کران بدهد.",
		"explanations.memorylessCurrent": "خروجی تنها به ورودی لحظهٔ فعلی وابسته است.",
		"explanations.memoryPastInput":   "خروجی به نمونه‌های گذشته وابسته است، پس سیستم حافظه دارد.",
		"explanations.timeInvariant":     "جابه‌جایی ورودی، خروجی را به همان اندازه جابه‌جا می‌کند.",
		"explanations.timeVariant":       "معادله در زمان ضرب شده است، پس ورودی جابه‌جا شده خروجی جابه‌جا شده نمی‌دهد.",

		"properties.linearity":       "خطی بودن",
		"properties.causality":       "علّی بودن",
		"properties.stability":       "پایداری",
		"properties.memory":          "حافظه",
		"properties.time_invariance": "تغییرناپذیری با زمان",

		"stability.stable":           "پایدار",
		"stability.unstable":         "ناپایدار",
		"stability.marginallyStable": "پایدار مرزی",
		"order.firstOrder":           "مرتبه اول",
		"order.secondOrder":          "مرتبه دوم",

		KeyPlay:         "پخش",
		KeyPause:        "توقف",
		KeyReset:        "بازنشانی",
		KeyYes:          "بله",
		KeyNo:           "خیر",
		KeyUnrecognized: "عبارت شناسایی نشد؛ نتیجهٔ پیش‌فرض نمایش داده می‌شود",
		KeyFrame:        "قاب",
		KeyLanguage:     "فارسی",
		KeyCalculating:  "در حال محاسبهٔ کانولوشن...",
	},
}

// Translate resolves key in l, falling back to English and then to the key itself.
func Translate(l Language, key string) string {
	if s, ok := catalog[l][key]; ok {
		return s
	}
	if s, ok := catalog[English][key]; ok {
		return s
	}
	return key
}

// Has reports whether key is defined for l.
func Has(l Language, key string) bool {
	_, ok := catalog[l][key]
	return ok
}
