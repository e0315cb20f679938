package i18n

type Messages struct {
	AppTitle          string
	MenuStandard      string
	MenuHD            string
	MenuVanity        string
	MenuImport        string
	MenuEncrypt       string
	MenuDecrypt       string
	MenuExit          string
	UnknownCommand    string
	PromptCount       string
	PromptWords       string
	PromptPrefix      string
	PromptSuffix      string
	PromptCaseSens    string
	PromptMaxAttempts string
	PromptSecret      string
	PromptPassword    string
	PromptHint        string
	VanityEstimate    string
	VanityStarted     string
	VanityCancelled   string
	ImportedAddress   string
	InvalidInput      string
}

func Get(lang string) Messages {
	switch lang {
	case "ru":
		return Messages{
			AppTitle:          "SolTools — стартовое меню",
			MenuStandard:      "1) Сгенерировать независимые кейпары",
			MenuHD:            "2) Сгенерировать HD-аккаунты из мнемоники",
			MenuVanity:        "3) Поиск vanity-адреса",
			MenuImport:        "4) Импорт кейпара из секретного ключа",
			MenuEncrypt:       "5) Шифрация секретных ключей -> vault",
			MenuDecrypt:       "6) Дешифрация vault -> секретные ключи",
			MenuExit:          "Enter — выход",
			UnknownCommand:    "Неизвестная команда:",
			PromptCount:       "Сколько аккаунтов (1-100, по умолчанию 5): ",
			PromptWords:       "Длина мнемоники, слов (12 или 24, по умолчанию 12): ",
			PromptPrefix:      "Префикс (base58, можно пусто): ",
			PromptSuffix:      "Суффикс (base58, можно пусто): ",
			PromptCaseSens:    "Учитывать регистр? (y/n, по умолчанию y): ",
			PromptMaxAttempts: "Лимит попыток (0 = без лимита): ",
			PromptSecret:      "Секретный ключ (base58, ввод скрыт): ",
			PromptPassword:    "Пароль vault (ввод скрыт): ",
			PromptHint:        "Подсказка для пароля (сохранится в hint.txt, можно пусто): ",
			VanityEstimate:    "Ожидаемое число попыток",
			VanityStarted:     "Поиск запущен, Ctrl+C для отмены",
			VanityCancelled:   "Поиск отменён",
			ImportedAddress:   "Импортирован адрес",
			InvalidInput:      "Некорректный ввод",
		}
	default: // "en"
		return Messages{
			AppTitle:          "SolTools — start menu",
			MenuStandard:      "1) Generate independent keypairs",
			MenuHD:            "2) Generate HD accounts from a mnemonic",
			MenuVanity:        "3) Vanity address search",
			MenuImport:        "4) Import keypair from secret key",
			MenuEncrypt:       "5) Encrypt secret keys -> vault",
			MenuDecrypt:       "6) Decrypt vault -> secret keys",
			MenuExit:          "Press enter to exit",
			UnknownCommand:    "Unknown command:",
			PromptCount:       "How many accounts (1-100, default 5): ",
			PromptWords:       "Mnemonic length, words (12 or 24, default 12): ",
			PromptPrefix:      "Prefix (base58, may be empty): ",
			PromptSuffix:      "Suffix (base58, may be empty): ",
			PromptCaseSens:    "Case sensitive? (y/n, default y): ",
			PromptMaxAttempts: "Attempt budget (0 = unbounded): ",
			PromptSecret:      "Secret key (base58, input hidden): ",
			PromptPassword:    "Vault password (input hidden): ",
			PromptHint:        "Optional password hint (saved to hint.txt): ",
			VanityEstimate:    "Expected attempts",
			VanityStarted:     "Search running, Ctrl+C to cancel",
			VanityCancelled:   "Search cancelled",
			ImportedAddress:   "Imported address",
			InvalidInput:      "Invalid input",
		}
	}
}
