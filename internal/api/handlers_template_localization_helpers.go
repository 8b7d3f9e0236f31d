package api

func templateTranslate(messages map[string]string, key string) string {
	return translateMessage(messages, key)
}

// templateFlashText renders a flash value that is either a message key or an
// error text. Known error texts are mapped to their message keys first.
func templateFlashText(messages map[string]string, value string) string {
	if key := errorTranslationKey(value); key != "" {
		return translateMessage(messages, key)
	}
	return translateMessage(messages, value)
}

func templateRoleLabel(messages map[string]string, role string) string {
	return translateMessage(messages, roleTranslationKey(role))
}

func templateProjectLabel(messages map[string]string, project string) string {
	return translateMessage(messages, "project."+project)
}

func templateSlotLabel(messages map[string]string, day string, period string) string {
	return translateMessage(messages, "planning.day."+day) + " " + translateMessage(messages, "planning.period."+period)
}
