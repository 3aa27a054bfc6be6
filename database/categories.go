package database

import "versehub/models"

// Curated topical taxonomy seeded at startup. Slugs are stable identifiers;
// re-running the seeder updates names/icons in place and never duplicates.
var seedCategories = []models.Category{
	// TEOLOGIA PRÓPRIA (Deus)
	{Name: "Deus", Slug: "deus", Icon: "infinite-outline", Color: "#7c3aed", GroupLabel: "Teologia"},
	{Name: "Atributos de Deus", Slug: "atributos-de-deus", Icon: "star-outline", Color: "#8b5cf6", GroupLabel: "Teologia"},
	{Name: "Trindade", Slug: "trindade", Icon: "triangle-outline", Color: "#a78bfa", GroupLabel: "Teologia"},
	{Name: "Soberania de Deus", Slug: "soberania-de-deus", Icon: "globe-outline", Color: "#6366f1", GroupLabel: "Teologia"},
	{Name: "Santidade", Slug: "santidade", Icon: "sparkles-outline", Color: "#818cf8", GroupLabel: "Teologia"},
	{Name: "Glória de Deus", Slug: "gloria-de-deus", Icon: "sunny-outline", Color: "#fbbf24", GroupLabel: "Teologia"},
	{Name: "Reino de Deus", Slug: "reino-de-deus", Icon: "home-outline", Color: "#f59e0b", GroupLabel: "Teologia"},
	{Name: "Criação", Slug: "criacao", Icon: "planet-outline", Color: "#10b981", GroupLabel: "Teologia"},
	{Name: "Providência", Slug: "providencia", Icon: "hand-right-outline", Color: "#14b8a6", GroupLabel: "Teologia"},
	{Name: "Eleição", Slug: "eleicao", Icon: "checkmark-circle-outline", Color: "#0d9488", GroupLabel: "Teologia"},
	{Name: "Predestinação", Slug: "predestinacao", Icon: "git-branch-outline", Color: "#0891b2", GroupLabel: "Teologia"},
	{Name: "Livre-Arbítrio", Slug: "livre-arbitrio", Icon: "options-outline", Color: "#06b6d4", GroupLabel: "Teologia"},
	{Name: "Revelação", Slug: "revelacao", Icon: "eye-outline", Color: "#22d3ee", GroupLabel: "Teologia"},
	{Name: "Inspiração das Escrituras", Slug: "inspiracao-das-escrituras", Icon: "book-outline", Color: "#67e8f9", GroupLabel: "Teologia"},

	// CRISTOLOGIA
	{Name: "Jesus Cristo", Slug: "jesus-cristo", Icon: "person-outline", Color: "#dc2626", GroupLabel: "Cristologia"},
	{Name: "Jesus Filho de Deus", Slug: "jesus-filho-de-deus", Icon: "heart-circle-outline", Color: "#ef4444", GroupLabel: "Cristologia"},
	{Name: "Divindade de Cristo", Slug: "divindade-de-cristo", Icon: "flash-outline", Color: "#f87171", GroupLabel: "Cristologia"},
	{Name: "Humanidade de Cristo", Slug: "humanidade-de-cristo", Icon: "body-outline", Color: "#fb923c", GroupLabel: "Cristologia"},
	{Name: "Encarnação", Slug: "encarnacao", Icon: "gift-outline", Color: "#f97316", GroupLabel: "Cristologia"},
	{Name: "Sacrifício", Slug: "sacrificio", Icon: "add-outline", Color: "#ea580c", GroupLabel: "Cristologia"},
	{Name: "Redenção", Slug: "redencao", Icon: "shield-checkmark-outline", Color: "#c2410c", GroupLabel: "Cristologia"},
	{Name: "Ressurreição", Slug: "ressurreicao", Icon: "arrow-up-circle-outline", Color: "#22c55e", GroupLabel: "Cristologia"},
	{Name: "Segunda Vinda", Slug: "segunda-vinda", Icon: "cloud-download-outline", Color: "#16a34a", GroupLabel: "Cristologia"},
	{Name: "Senhorio de Cristo", Slug: "senhorio-de-cristo", Icon: "ribbon-outline", Color: "#15803d", GroupLabel: "Cristologia"},
	{Name: "Ministério de Jesus", Slug: "ministerio-de-jesus", Icon: "walk-outline", Color: "#166534", GroupLabel: "Cristologia"},
	{Name: "Parábolas", Slug: "parabolas", Icon: "chatbubbles-outline", Color: "#84cc16", GroupLabel: "Cristologia"},
	{Name: "Milagres", Slug: "milagres", Icon: "sparkles-outline", Color: "#a3e635", GroupLabel: "Cristologia"},

	// ESPÍRITO SANTO
	{Name: "Espírito Santo", Slug: "espirito-santo", Icon: "flame-outline", Color: "#0ea5e9", GroupLabel: "Espírito Santo"},
	{Name: "Batismo no Espírito", Slug: "batismo-no-espirito", Icon: "water-outline", Color: "#38bdf8", GroupLabel: "Espírito Santo"},
	{Name: "Dons Espirituais", Slug: "dons-espirituais", Icon: "gift-outline", Color: "#7dd3fc", GroupLabel: "Espírito Santo"},
	{Name: "Fruto do Espírito", Slug: "fruto-do-espirito", Icon: "leaf-outline", Color: "#22c55e", GroupLabel: "Espírito Santo"},
	{Name: "Consolador", Slug: "consolador", Icon: "heart-outline", Color: "#4ade80", GroupLabel: "Espírito Santo"},
	{Name: "Direção Espiritual", Slug: "direcao-espiritual", Icon: "compass-outline", Color: "#86efac", GroupLabel: "Espírito Santo"},
	{Name: "Poder Espiritual", Slug: "poder-espiritual", Icon: "flash-outline", Color: "#fcd34d", GroupLabel: "Espírito Santo"},

	// SALVAÇÃO
	{Name: "Salvação", Slug: "salvacao", Icon: "shield-checkmark-outline", Color: "#dc2626", GroupLabel: "Salvação"},
	{Name: "Graça", Slug: "graca", Icon: "gift-outline", Color: "#ec4899", GroupLabel: "Salvação"},
	{Name: "Fé", Slug: "fe", Icon: "flame-outline", Color: "#f43f5e", GroupLabel: "Salvação"},
	{Name: "Arrependimento", Slug: "arrependimento", Icon: "refresh-outline", Color: "#fb7185", GroupLabel: "Salvação"},
	{Name: "Justificação", Slug: "justificacao", Icon: "checkmark-done-outline", Color: "#fda4af", GroupLabel: "Salvação"},
	{Name: "Santificação", Slug: "santificacao", Icon: "sparkles-outline", Color: "#a855f7", GroupLabel: "Salvação"},
	{Name: "Regeneração", Slug: "regeneracao", Icon: "sync-outline", Color: "#c084fc", GroupLabel: "Salvação"},
	{Name: "Perdão", Slug: "perdao", Icon: "hand-left-outline", Color: "#14b8a6", GroupLabel: "Salvação"},
	{Name: "Vida Eterna", Slug: "vida-eterna", Icon: "infinite-outline", Color: "#2dd4bf", GroupLabel: "Salvação"},
	{Name: "Novo Nascimento", Slug: "novo-nascimento", Icon: "flower-outline", Color: "#5eead4", GroupLabel: "Salvação"},
	{Name: "Conversão", Slug: "conversao", Icon: "swap-horizontal-outline", Color: "#99f6e4", GroupLabel: "Salvação"},

	// IGREJA
	{Name: "Igreja", Slug: "igreja", Icon: "business-outline", Color: "#3b82f6", GroupLabel: "Igreja"},
	{Name: "Corpo de Cristo", Slug: "corpo-de-cristo", Icon: "people-outline", Color: "#60a5fa", GroupLabel: "Igreja"},
	{Name: "Comunhão", Slug: "comunhao", Icon: "people-circle-outline", Color: "#93c5fd", GroupLabel: "Igreja"},
	{Name: "Unidade", Slug: "unidade", Icon: "link-outline", Color: "#2563eb", GroupLabel: "Igreja"},
	{Name: "Liderança", Slug: "lideranca", Icon: "person-add-outline", Color: "#1d4ed8", GroupLabel: "Igreja"},
	{Name: "Disciplina", Slug: "disciplina", Icon: "school-outline", Color: "#1e40af", GroupLabel: "Igreja"},
	{Name: "Missão", Slug: "missao", Icon: "send-outline", Color: "#1e3a8a", GroupLabel: "Igreja"},
	{Name: "Evangelismo", Slug: "evangelismo", Icon: "megaphone-outline", Color: "#f97316", GroupLabel: "Igreja"},
	{Name: "Batismo", Slug: "batismo", Icon: "water-outline", Color: "#0ea5e9", GroupLabel: "Igreja"},
	{Name: "Ceia do Senhor", Slug: "ceia-do-senhor", Icon: "wine-outline", Color: "#7c2d12", GroupLabel: "Igreja"},
	{Name: "Ministério", Slug: "ministerio", Icon: "hand-right-outline", Color: "#0284c7", GroupLabel: "Igreja"},

	// ESCATOLOGIA
	{Name: "Escatologia", Slug: "escatologia", Icon: "hourglass-outline", Color: "#4c1d95", GroupLabel: "Escatologia"},
	{Name: "Juízo Final", Slug: "juizo-final", Icon: "scale-outline", Color: "#5b21b6", GroupLabel: "Escatologia"},
	{Name: "Céu", Slug: "ceu", Icon: "cloudy-outline", Color: "#7dd3fc", GroupLabel: "Escatologia"},
	{Name: "Inferno", Slug: "inferno", Icon: "flame-outline", Color: "#b91c1c", GroupLabel: "Escatologia"},
	{Name: "Ressurreição dos Mortos", Slug: "ressurreicao-dos-mortos", Icon: "arrow-up-outline", Color: "#059669", GroupLabel: "Escatologia"},
	{Name: "Vida Após a Morte", Slug: "vida-apos-a-morte", Icon: "moon-outline", Color: "#6366f1", GroupLabel: "Escatologia"},
	{Name: "Nova Jerusalém", Slug: "nova-jerusalem", Icon: "diamond-outline", Color: "#fcd34d", GroupLabel: "Escatologia"},
	{Name: "Tribulação", Slug: "tribulacao", Icon: "thunderstorm-outline", Color: "#64748b", GroupLabel: "Escatologia"},
	{Name: "Anticristo", Slug: "anticristo", Icon: "skull-outline", Color: "#1e293b", GroupLabel: "Escatologia"},
	{Name: "Eternidade", Slug: "eternidade", Icon: "infinite-outline", Color: "#a855f7", GroupLabel: "Escatologia"},

	// LEI / PECADO
	{Name: "Lei de Deus", Slug: "lei-de-deus", Icon: "document-text-outline", Color: "#78716c", GroupLabel: "Lei e Pecado"},
	{Name: "Mandamentos", Slug: "mandamentos", Icon: "list-outline", Color: "#57534e", GroupLabel: "Lei e Pecado"},
	{Name: "Obediência", Slug: "obediencia", Icon: "checkmark-circle-outline", Color: "#059669", GroupLabel: "Lei e Pecado"},
	{Name: "Desobediência", Slug: "desobediencia", Icon: "close-circle-outline", Color: "#dc2626", GroupLabel: "Lei e Pecado"},
	{Name: "Justiça", Slug: "justica", Icon: "scale-outline", Color: "#0284c7", GroupLabel: "Lei e Pecado"},
	{Name: "Julgamento", Slug: "julgamento", Icon: "hammer-outline", Color: "#475569", GroupLabel: "Lei e Pecado"},
	{Name: "Pecado", Slug: "pecado", Icon: "warning-outline", Color: "#991b1b", GroupLabel: "Lei e Pecado"},
	{Name: "Consequências do Pecado", Slug: "consequencias-do-pecado", Icon: "alert-circle-outline", Color: "#7f1d1d", GroupLabel: "Lei e Pecado"},
	{Name: "Santidade Prática", Slug: "santidade-pratica", Icon: "sparkles-outline", Color: "#d946ef", GroupLabel: "Lei e Pecado"},

	// VIRTUDES
	{Name: "Amor", Slug: "amor", Icon: "heart-outline", Color: "#ec4899", GroupLabel: "Virtudes"},
	{Name: "Esperança", Slug: "esperanca", Icon: "sunny-outline", Color: "#22c55e", GroupLabel: "Virtudes"},
	{Name: "Humildade", Slug: "humildade", Icon: "ribbon-outline", Color: "#78716c", GroupLabel: "Virtudes"},
	{Name: "Mansidão", Slug: "mansidao", Icon: "flower-outline", Color: "#a3e635", GroupLabel: "Virtudes"},
	{Name: "Paciência", Slug: "paciencia", Icon: "time-outline", Color: "#0891b2", GroupLabel: "Virtudes"},
	{Name: "Perseverança", Slug: "perseveranca", Icon: "fitness-outline", Color: "#f97316", GroupLabel: "Virtudes"},
	{Name: "Bondade", Slug: "bondade", Icon: "happy-outline", Color: "#4ade80", GroupLabel: "Virtudes"},
	{Name: "Misericórdia", Slug: "misericordia", Icon: "hand-right-outline", Color: "#2dd4bf", GroupLabel: "Virtudes"},
	{Name: "Fidelidade", Slug: "fidelidade", Icon: "shield-outline", Color: "#3b82f6", GroupLabel: "Virtudes"},
	{Name: "Generosidade", Slug: "generosidade", Icon: "gift-outline", Color: "#f472b6", GroupLabel: "Virtudes"},

	// ADVERTÊNCIAS
	{Name: "Orgulho", Slug: "orgulho", Icon: "trending-up-outline", Color: "#dc2626", GroupLabel: "Advertências"},
	{Name: "Inveja", Slug: "inveja", Icon: "eye-off-outline", Color: "#16a34a", GroupLabel: "Advertências"},
	{Name: "Ira", Slug: "ira", Icon: "flame-outline", Color: "#ef4444", GroupLabel: "Advertências"},
	{Name: "Ganância", Slug: "ganancia", Icon: "cash-outline", Color: "#eab308", GroupLabel: "Advertências"},
	{Name: "Idolatria", Slug: "idolatria", Icon: "image-outline", Color: "#78716c", GroupLabel: "Advertências"},
	{Name: "Imoralidade", Slug: "imoralidade", Icon: "ban-outline", Color: "#be123c", GroupLabel: "Advertências"},
	{Name: "Mentira", Slug: "mentira", Icon: "close-outline", Color: "#1e293b", GroupLabel: "Advertências"},
	{Name: "Hipocrisia", Slug: "hipocrisia", Icon: "person-outline", Color: "#64748b", GroupLabel: "Advertências"},
	{Name: "Advertência", Slug: "advertencia", Icon: "warning-outline", Color: "#f59e0b", GroupLabel: "Advertências"},
	{Name: "Castigo", Slug: "castigo", Icon: "hammer-outline", Color: "#92400e", GroupLabel: "Advertências"},
	{Name: "Correção", Slug: "correcao", Icon: "construct-outline", Color: "#0369a1", GroupLabel: "Advertências"},

	// FINANÇAS
	{Name: "Finanças", Slug: "financas", Icon: "wallet-outline", Color: "#059669", GroupLabel: "Finanças"},
	{Name: "Riqueza", Slug: "riqueza", Icon: "diamond-outline", Color: "#fbbf24", GroupLabel: "Finanças"},
	{Name: "Pobreza", Slug: "pobreza", Icon: "sad-outline", Color: "#78716c", GroupLabel: "Finanças"},
	{Name: "Trabalho", Slug: "trabalho", Icon: "briefcase-outline", Color: "#64748b", GroupLabel: "Finanças"},
	{Name: "Diligência", Slug: "diligencia", Icon: "speedometer-outline", Color: "#16a34a", GroupLabel: "Finanças"},
	{Name: "Preguiça", Slug: "preguica", Icon: "bed-outline", Color: "#a16207", GroupLabel: "Finanças"},
	{Name: "Mordomia", Slug: "mordomia", Icon: "home-outline", Color: "#0284c7", GroupLabel: "Finanças"},
	{Name: "Dízimo", Slug: "dizimo", Icon: "pie-chart-outline", Color: "#7c3aed", GroupLabel: "Finanças"},
	{Name: "Oferta", Slug: "oferta", Icon: "gift-outline", Color: "#db2777", GroupLabel: "Finanças"},
	{Name: "Prosperidade", Slug: "prosperidade", Icon: "trending-up-outline", Color: "#22c55e", GroupLabel: "Finanças"},
	{Name: "Contentamento", Slug: "contentamento", Icon: "happy-outline", Color: "#14b8a6", GroupLabel: "Finanças"},
	{Name: "Justiça Social", Slug: "justica-social", Icon: "scale-outline", Color: "#0891b2", GroupLabel: "Finanças"},
	{Name: "Dívida", Slug: "divida", Icon: "card-outline", Color: "#dc2626", GroupLabel: "Finanças"},
	{Name: "Honestidade", Slug: "honestidade", Icon: "checkmark-outline", Color: "#059669", GroupLabel: "Finanças"},
	{Name: "Prioridades", Slug: "prioridades", Icon: "list-outline", Color: "#6366f1", GroupLabel: "Finanças"},
	{Name: "Herança", Slug: "heranca", Icon: "document-outline", Color: "#a855f7", GroupLabel: "Finanças"},

	// SABEDORIA
	{Name: "Sabedoria", Slug: "sabedoria", Icon: "bulb-outline", Color: "#f59e0b", GroupLabel: "Sabedoria"},
	{Name: "Conhecimento", Slug: "conhecimento", Icon: "library-outline", Color: "#0ea5e9", GroupLabel: "Sabedoria"},
	{Name: "Discernimento", Slug: "discernimento", Icon: "eye-outline", Color: "#8b5cf6", GroupLabel: "Sabedoria"},
	{Name: "Prudência", Slug: "prudencia", Icon: "shield-outline", Color: "#64748b", GroupLabel: "Sabedoria"},
	{Name: "Conselho", Slug: "conselho", Icon: "chatbubble-outline", Color: "#06b6d4", GroupLabel: "Sabedoria"},
	{Name: "Ensino", Slug: "ensino", Icon: "school-outline", Color: "#3b82f6", GroupLabel: "Sabedoria"},
	{Name: "Temor do Senhor", Slug: "temor-do-senhor", Icon: "heart-circle-outline", Color: "#7c3aed", GroupLabel: "Sabedoria"},
	{Name: "Insensatez", Slug: "insensatez", Icon: "help-circle-outline", Color: "#78716c", GroupLabel: "Sabedoria"},

	// SOFRIMENTO
	{Name: "Sofrimento", Slug: "sofrimento", Icon: "sad-outline", Color: "#475569", GroupLabel: "Sofrimento"},
	{Name: "Dor", Slug: "dor", Icon: "bandage-outline", Color: "#64748b", GroupLabel: "Sofrimento"},
	{Name: "Aflição", Slug: "aflicao", Icon: "thunderstorm-outline", Color: "#334155", GroupLabel: "Sofrimento"},
	{Name: "Perseguição", Slug: "perseguicao", Icon: "walk-outline", Color: "#1e293b", GroupLabel: "Sofrimento"},
	{Name: "Provação", Slug: "provacao", Icon: "flask-outline", Color: "#f97316", GroupLabel: "Sofrimento"},
	{Name: "Consolação", Slug: "consolacao", Icon: "heart-outline", Color: "#ec4899", GroupLabel: "Sofrimento"},

	// ORAÇÃO
	{Name: "Oração", Slug: "oracao", Icon: "chatbubble-ellipses-outline", Color: "#8b5cf6", GroupLabel: "Oração"},
	{Name: "Louvor", Slug: "louvor", Icon: "musical-notes-outline", Color: "#a855f7", GroupLabel: "Oração"},
	{Name: "Adoração", Slug: "adoracao", Icon: "star-outline", Color: "#fbbf24", GroupLabel: "Oração"},
	{Name: "Jejum", Slug: "jejum", Icon: "restaurant-outline", Color: "#78716c", GroupLabel: "Oração"},
	{Name: "Intercessão", Slug: "intercessao", Icon: "people-outline", Color: "#06b6d4", GroupLabel: "Oração"},
	{Name: "Clamor", Slug: "clamor", Icon: "megaphone-outline", Color: "#f43f5e", GroupLabel: "Oração"},
	{Name: "Gratidão", Slug: "gratidao", Icon: "gift-outline", Color: "#84cc16", GroupLabel: "Oração"},

	// DIREÇÃO
	{Name: "Vontade de Deus", Slug: "vontade-de-deus", Icon: "compass-outline", Color: "#7c3aed", GroupLabel: "Direção"},
	{Name: "Propósito", Slug: "proposito", Icon: "flag-outline", Color: "#f97316", GroupLabel: "Direção"},
	{Name: "Chamado", Slug: "chamado", Icon: "call-outline", Color: "#0ea5e9", GroupLabel: "Direção"},
	{Name: "Decisão", Slug: "decisao", Icon: "git-branch-outline", Color: "#64748b", GroupLabel: "Direção"},
	{Name: "Caminhos do Homem", Slug: "caminhos-do-homem", Icon: "map-outline", Color: "#78716c", GroupLabel: "Direção"},
	{Name: "Confiança em Deus", Slug: "confianca-em-deus", Icon: "shield-checkmark-outline", Color: "#22c55e", GroupLabel: "Direção"},
	{Name: "Planejamento", Slug: "planejamento", Icon: "calendar-outline", Color: "#3b82f6", GroupLabel: "Direção"},

	// RELACIONAMENTOS
	{Name: "Família", Slug: "familia", Icon: "people-outline", Color: "#3b82f6", GroupLabel: "Relacionamentos"},
	{Name: "Casamento", Slug: "casamento", Icon: "heart-outline", Color: "#ec4899", GroupLabel: "Relacionamentos"},
	{Name: "Pais e Filhos", Slug: "pais-e-filhos", Icon: "people-circle-outline", Color: "#8b5cf6", GroupLabel: "Relacionamentos"},
	{Name: "Amizade", Slug: "amizade", Icon: "person-add-outline", Color: "#06b6d4", GroupLabel: "Relacionamentos"},
	{Name: "Amor ao Próximo", Slug: "amor-ao-proximo", Icon: "heart-circle-outline", Color: "#f43f5e", GroupLabel: "Relacionamentos"},
	{Name: "Reconciliação", Slug: "reconciliacao", Icon: "git-merge-outline", Color: "#22c55e", GroupLabel: "Relacionamentos"},
	{Name: "Autoridade", Slug: "autoridade", Icon: "person-outline", Color: "#475569", GroupLabel: "Relacionamentos"},

	// GUERRA ESPIRITUAL
	{Name: "Batalha Espiritual", Slug: "batalha-espiritual", Icon: "shield-outline", Color: "#dc2626", GroupLabel: "Guerra Espiritual"},
	{Name: "Armadura de Deus", Slug: "armadura-de-deus", Icon: "body-outline", Color: "#f59e0b", GroupLabel: "Guerra Espiritual"},
	{Name: "Tentação", Slug: "tentacao", Icon: "alert-outline", Color: "#ef4444", GroupLabel: "Guerra Espiritual"},
	{Name: "Resistência ao Mal", Slug: "resistencia-ao-mal", Icon: "hand-left-outline", Color: "#16a34a", GroupLabel: "Guerra Espiritual"},
	{Name: "Vitória Espiritual", Slug: "vitoria-espiritual", Icon: "trophy-outline", Color: "#fbbf24", GroupLabel: "Guerra Espiritual"},

	// SOCIEDADE
	{Name: "Governo", Slug: "governo", Icon: "business-outline", Color: "#475569", GroupLabel: "Sociedade"},
	{Name: "Autoridades", Slug: "autoridades", Icon: "people-outline", Color: "#64748b", GroupLabel: "Sociedade"},
	{Name: "Paz", Slug: "paz", Icon: "leaf-outline", Color: "#06b6d4", GroupLabel: "Sociedade"},
	{Name: "Guerra", Slug: "guerra", Icon: "flash-outline", Color: "#dc2626", GroupLabel: "Sociedade"},
	{Name: "Nação", Slug: "nacao", Icon: "flag-outline", Color: "#16a34a", GroupLabel: "Sociedade"},
	{Name: "Responsabilidade Social", Slug: "responsabilidade-social", Icon: "hand-right-outline", Color: "#0891b2", GroupLabel: "Sociedade"},
	{Name: "Ética", Slug: "etica", Icon: "checkmark-done-outline", Color: "#7c3aed", GroupLabel: "Sociedade"},
	{Name: "Corrupção", Slug: "corrupcao", Icon: "close-circle-outline", Color: "#991b1b", GroupLabel: "Sociedade"},

	// HISTÓRIA BÍBLICA
	{Name: "Patriarcas", Slug: "patriarcas", Icon: "people-outline", Color: "#92400e", GroupLabel: "História Bíblica"},
	{Name: "Reis", Slug: "reis", Icon: "ribbon-outline", Color: "#fbbf24", GroupLabel: "História Bíblica"},
	{Name: "Profetas", Slug: "profetas", Icon: "megaphone-outline", Color: "#7c3aed", GroupLabel: "História Bíblica"},
	{Name: "Israel", Slug: "israel", Icon: "star-outline", Color: "#0ea5e9", GroupLabel: "História Bíblica"},
	{Name: "Exílio", Slug: "exilio", Icon: "walk-outline", Color: "#64748b", GroupLabel: "História Bíblica"},
	{Name: "Aliança", Slug: "alianca", Icon: "document-text-outline", Color: "#b45309", GroupLabel: "História Bíblica"},
	{Name: "Promessas", Slug: "promessas", Icon: "bookmark-outline", Color: "#0ea5e9", GroupLabel: "História Bíblica"},
	{Name: "Narrativas Históricas", Slug: "narrativas-historicas", Icon: "book-outline", Color: "#78716c", GroupLabel: "História Bíblica"},

	// VIDA CRISTÃ
	{Name: "Vida Cristã", Slug: "vida-crista", Icon: "walk-outline", Color: "#059669", GroupLabel: "Vida Cristã"},
	{Name: "Santidade Diária", Slug: "santidade-diaria", Icon: "today-outline", Color: "#8b5cf6", GroupLabel: "Vida Cristã"},
	{Name: "Testemunho", Slug: "testemunho", Icon: "chatbubble-outline", Color: "#f97316", GroupLabel: "Vida Cristã"},
	{Name: "Comportamento", Slug: "comportamento", Icon: "person-outline", Color: "#3b82f6", GroupLabel: "Vida Cristã"},
	{Name: "Ética Cristã", Slug: "etica-crista", Icon: "checkmark-circle-outline", Color: "#22c55e", GroupLabel: "Vida Cristã"},
	{Name: "Maturidade Espiritual", Slug: "maturidade-espiritual", Icon: "trending-up-outline", Color: "#14b8a6", GroupLabel: "Vida Cristã"},
	{Name: "Crescimento Espiritual", Slug: "crescimento-espiritual", Icon: "leaf-outline", Color: "#84cc16", GroupLabel: "Vida Cristã"},

	// PROMESSAS
	{Name: "Promessas de Deus", Slug: "promessas-de-deus", Icon: "bookmark-outline", Color: "#0ea5e9", GroupLabel: "Promessas"},
	{Name: "Proteção", Slug: "protecao", Icon: "shield-checkmark-outline", Color: "#6366f1", GroupLabel: "Promessas"},
	{Name: "Provisão", Slug: "provisao", Icon: "cash-outline", Color: "#10b981", GroupLabel: "Promessas"},
	{Name: "Cura", Slug: "cura", Icon: "medkit-outline", Color: "#f43f5e", GroupLabel: "Promessas"},
	{Name: "Libertação", Slug: "libertacao", Icon: "key-outline", Color: "#fbbf24", GroupLabel: "Promessas"},
	{Name: "Segurança", Slug: "seguranca", Icon: "lock-closed-outline", Color: "#22c55e", GroupLabel: "Promessas"},

	// JUSTIÇA
	{Name: "Justiça e Misericórdia", Slug: "justica-e-misericordia", Icon: "scale-outline", Color: "#7c3aed", GroupLabel: "Justiça"},
	{Name: "Equidade", Slug: "equidade", Icon: "git-compare-outline", Color: "#3b82f6", GroupLabel: "Justiça"},
	{Name: "Retidão", Slug: "retidao", Icon: "arrow-forward-outline", Color: "#059669", GroupLabel: "Justiça"},
	{Name: "Juízo Justo", Slug: "juizo-justo", Icon: "hammer-outline", Color: "#475569", GroupLabel: "Justiça"},
	{Name: "Defesa do Oprimido", Slug: "defesa-do-oprimido", Icon: "hand-left-outline", Color: "#f97316", GroupLabel: "Justiça"},

	// PROFECIA
	{Name: "Profecia", Slug: "profecia", Icon: "megaphone-outline", Color: "#7c3aed", GroupLabel: "Profecia"},
	{Name: "Profecias Messiânicas", Slug: "profecias-messianicas", Icon: "star-outline", Color: "#fbbf24", GroupLabel: "Profecia"},
	{Name: "Profecias Futuras", Slug: "profecias-futuras", Icon: "hourglass-outline", Color: "#6366f1", GroupLabel: "Profecia"},
	{Name: "Advertências Proféticas", Slug: "advertencias-profeticas", Icon: "warning-outline", Color: "#f59e0b", GroupLabel: "Profecia"},

	// EMOÇÕES
	{Name: "Medo", Slug: "medo", Icon: "alert-circle-outline", Color: "#64748b", GroupLabel: "Emoções"},
	{Name: "Ansiedade", Slug: "ansiedade", Icon: "pulse-outline", Color: "#f97316", GroupLabel: "Emoções"},
	{Name: "Alegria", Slug: "alegria", Icon: "happy-outline", Color: "#fbbf24", GroupLabel: "Emoções"},
	{Name: "Tristeza", Slug: "tristeza", Icon: "sad-outline", Color: "#475569", GroupLabel: "Emoções"},
	{Name: "Confiança", Slug: "confianca", Icon: "shield-outline", Color: "#22c55e", GroupLabel: "Emoções"},

	// OUTROS (Provérbios)
	{Name: "Justo x Perverso", Slug: "justo-x-perverso", Icon: "git-compare-outline", Color: "#475569", GroupLabel: "Outros"},
	{Name: "Morte x Vida", Slug: "morte-x-vida", Icon: "pulse-outline", Color: "#64748b", GroupLabel: "Outros"},
	{Name: "Negligência x Diligência", Slug: "negligencia-x-diligencia", Icon: "swap-horizontal-outline", Color: "#78716c", GroupLabel: "Outros"},
	{Name: "Armadilhas", Slug: "armadilhas", Icon: "warning-outline", Color: "#dc2626", GroupLabel: "Outros"},
	{Name: "Língua", Slug: "lingua", Icon: "chatbubble-outline", Color: "#f43f5e", GroupLabel: "Outros"},
	{Name: "Coração", Slug: "coracao", Icon: "heart-outline", Color: "#ec4899", GroupLabel: "Outros"},
	{Name: "Legado", Slug: "legado", Icon: "document-outline", Color: "#a855f7", GroupLabel: "Outros"},
	{Name: "Bebida", Slug: "bebida", Icon: "wine-outline", Color: "#7c2d12", GroupLabel: "Outros"},
	{Name: "Ecologia", Slug: "ecologia", Icon: "leaf-outline", Color: "#22c55e", GroupLabel: "Outros"},
	{Name: "Mulher", Slug: "mulher", Icon: "woman-outline", Color: "#ec4899", GroupLabel: "Outros"},
	{Name: "Perverso", Slug: "perverso", Icon: "skull-outline", Color: "#1e293b", GroupLabel: "Outros"},
	{Name: "Outros", Slug: "outros", Icon: "ellipsis-horizontal-outline", Color: "#9ca3af", GroupLabel: "Outros"},
}
