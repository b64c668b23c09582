package tabu

var deckTR = []WordCard{
	card("tr-001", "Fil", "hayvanlar", allAges, "hortum", "büyük", "gri", "Afrika", "kulak", "hayvanat bahçesi", "fildişi"),
	card("tr-002", "Pizza", "yemek", allAges, "peynir", "İtalya", "dilim", "domates", "hamur", "fırın", "sucuk"),
	card("tr-003", "Gökkuşağı", "doğa", allAges, "renk", "yağmur", "gökyüzü", "güneş", "yedi", "kemer", "renkli"),
	card("tr-004", "Doğum günü", "etkinlik", allAges, "pasta", "mum", "parti", "hediye", "yaş", "kutlama", "balon"),
	card("tr-005", "Penguen", "hayvanlar", allAges, "kuş", "buz", "siyah", "beyaz", "kutup", "uçmak", "yüzmek"),
	card("tr-006", "Öğretmen", "meslek", allAges, "okul", "sınıf", "öğrenci", "ders", "ödev", "tahta", "öğretmek"),
	card("tr-007", "Bisiklet", "ulaşım", allAges, "tekerlek", "pedal", "sürmek", "kask", "zincir", "iki", "binmek"),
	card("tr-008", "Dondurma", "yemek", allAges, "soğuk", "külah", "vanilya", "top", "yaz", "tatlı", "çikolata"),
	card("tr-009", "Akıllı telefon", "teknoloji", olderAges, "aramak", "uygulama", "ekran", "dokunmak", "mobil", "şarj", "kamera"),
	card("tr-010", "Yanardağ", "doğa", olderAges, "lav", "patlamak", "dağ", "kül", "sıcak", "magma", "krater"),
	card("tr-011", "Pasaport", "seyahat", olderAges, "seyahat", "ülke", "sınır", "fotoğraf", "vize", "havalimanı", "damga"),
	card("tr-012", "Sınav", "okul", olderAges, "test", "çalışmak", "not", "soru", "geçmek", "kalmak", "okul"),
	card("tr-013", "Kredi", "para", adultOnly, "banka", "faiz", "borç", "ödeme", "taksit", "ev", "almak"),
	card("tr-014", "Türk kahvesi", "yemek", adultOnly, "fincan", "köpük", "fal", "cezve", "içmek", "telve", "şeker"),
	card("tr-015", "Düğün", "etkinlik", olderAges, "gelin", "damat", "evlenmek", "yüzük", "halay", "nikah", "gelinlik"),
	card("tr-016", "İş görüşmesi", "iş", adultOnly, "işe almak", "soru", "özgeçmiş", "şirket", "pozisyon", "heyecan", "patron"),
	card("tr-017", "Korsan", "kurgu", allAges, "gemi", "hazine", "papağan", "deniz", "göz bandı", "kaptan", "kanca"),
	card("tr-018", "Kardan adam", "doğa", allAges, "kar", "kış", "havuç", "burun", "yapmak", "soğuk", "atkı"),
}
