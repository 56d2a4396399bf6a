package entity

// Settings is the process-wide organization profile read by every document
// renderer. Exactly one row exists, keyed by SettingsID.
type Settings struct {
	SignatureDate    string `json:"signature_date"`
	LogoURL          string `json:"logo_url"`
	OfficialName     string `json:"official_name"`
	OfficialNIP      string `json:"official_nip"`
	OfficialPosition string `json:"official_position"`
	OfficialRank     string `json:"official_rank"`
	OPDName          string `json:"opd_name"`
	SKOfficial       string `json:"sk_official"`
}

// SettingsID is the fixed key of the settings singleton.
const SettingsID = 1

// DefaultSettings returns the seed values used on first run, before an admin
// has saved anything.
func DefaultSettings() *Settings {
	return &Settings{
		SignatureDate:    "2025-01-02",
		LogoURL:          "",
		OfficialName:     "H. AHMAD SUGIARTO, S.T., M.T.",
		OfficialNIP:      "19700101 199003 1 001",
		OfficialPosition: "Sekretaris Daerah",
		OfficialRank:     "Pembina Utama Muda (IV/c)",
		OPDName:          "Sekretariat Daerah",
		SKOfficial:       "BUPATI DEMAK",
	}
}
