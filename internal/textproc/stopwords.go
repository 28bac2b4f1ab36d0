package textproc

import "github.com/pustaka-labs/naskah/internal/core/domain"

// englishStopwords is the filter list for English keyword candidates.
var englishStopwords = map[string]struct{}{}

// indonesianStopwords is the filter list for Indonesian keyword candidates.
var indonesianStopwords = map[string]struct{}{}

// indonesianMarkers are high-frequency Indonesian function words used
// for language detection. Academic register words (penelitian,
// menggunakan, hasil) are included because student documents lean on
// them heavily even when the body quotes English terminology.
var indonesianMarkers = []string{
	"yang", "dengan", "untuk", "dari", "dalam", "adalah", "telah",
	"dapat", "tidak", "oleh", "ini", "itu", "dan", "atau", "pada",
	"akan", "juga", "secara", "bahwa", "merupakan", "sebagai",
	"karena", "penelitian", "menggunakan", "hasil", "terhadap",
}

var englishStopwordList = []string{
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "when",
	"at", "by", "for", "with", "about", "against", "between", "into",
	"through", "during", "before", "after", "above", "below", "to",
	"from", "up", "down", "in", "out", "on", "off", "over", "under",
	"again", "further", "once", "here", "there", "all", "any", "both",
	"each", "few", "more", "most", "other", "some", "such", "no", "nor",
	"not", "only", "own", "same", "so", "than", "too", "very", "can",
	"will", "just", "should", "now", "is", "are", "was", "were", "be",
	"been", "being", "have", "has", "had", "having", "do", "does",
	"did", "doing", "would", "could", "may", "might", "must", "shall",
	"of", "as", "it", "its", "this", "that", "these", "those", "i",
	"we", "our", "ours", "you", "your", "yours", "he", "him", "his",
	"she", "her", "hers", "they", "them", "their", "theirs", "what",
	"which", "who", "whom", "whose", "where", "why", "how", "also",
	"however", "therefore", "thus", "hence", "moreover", "furthermore",
	"using", "used", "use", "based", "paper", "study", "research",
	"results", "result", "proposed", "method", "approach",
}

var indonesianStopwordList = []string{
	"yang", "dengan", "untuk", "dari", "dalam", "adalah", "telah",
	"dapat", "tidak", "oleh", "ini", "itu", "dan", "atau", "pada",
	"akan", "juga", "secara", "bahwa", "merupakan", "sebagai",
	"karena", "kepada", "sehingga", "tersebut", "lebih", "masih",
	"harus", "sudah", "saat", "ketika", "agar", "bagi", "serta",
	"antara", "namun", "tetapi", "jika", "maka", "yaitu", "yakni",
	"hanya", "sangat", "setiap", "seperti", "hingga", "melalui",
	"tanpa", "selain", "berdasarkan", "terhadap", "maupun", "bisa",
	"adanya", "dilakukan", "digunakan", "menggunakan", "penelitian",
	"hasil", "data", "ada", "di", "ke", "para", "kita", "kami",
	"saya", "mereka", "dia", "ia", "nya", "pun", "lain", "banyak",
	"beberapa", "semua", "suatu", "sebuah", "dua", "tiga", "satu",
	"bab", "tabel", "gambar",
}

func init() {
	for _, w := range englishStopwordList {
		englishStopwords[w] = struct{}{}
	}
	for _, w := range indonesianStopwordList {
		indonesianStopwords[w] = struct{}{}
	}
}

// IsStopword reports whether the lowercased token is a stopword for
// the given language. Unknown languages use the English list.
func IsStopword(token string, lang domain.Language) bool {
	if lang == domain.LanguageIndonesian {
		_, ok := indonesianStopwords[token]
		return ok
	}
	_, ok := englishStopwords[token]
	return ok
}
