package catalog

// seedRules defines the built-in rule catalog: 18 rules across 8 categories.
var seedRules = []GrammarRule{
	// Contractions (4)
	{
		ID:          "contraction-au",
		Category:    CategoryContraction,
		Statement:   "The preposition \"à\" contracts with \"le\" to form \"au\".",
		Explanation: "French never allows \"à le\" before a masculine singular noun. The two words fuse into the single form \"au\". Before feminine nouns (\"à la\") and before vowels (\"à l'\") no contraction happens.",
		Examples: []Example{
			{Incorrect: "Je vais à le parc.", Correct: "Je vais au parc.", Translation: "I am going to the park."},
			{Incorrect: "Il joue à le football.", Correct: "Il joue au football.", Translation: "He plays football."},
			{Correct: "Elle va à la plage.", Translation: "She goes to the beach."},
		},
		Exceptions: []string{
			"No contraction with \"la\": à la gare.",
			"No contraction before a vowel or mute h: à l'école, à l'hôtel.",
		},
		CommonMistakes: []string{
			"Writing \"à le\" instead of \"au\".",
			"Contracting \"à la\" into \"au\" for feminine nouns.",
		},
		RelatedRules: []string{"contraction-aux", "contraction-du"},
		Difficulty:   1,
		PracticeItems: []PracticeItem{
			{Prompt: "Transform: Je vais ___ (à + le) cinéma.", Answer: "au", Hint: "à + le fuses into one word."},
			{Prompt: "Fix: Nous allons à le marché.", Answer: "Nous allons au marché.", Hint: "Look at the words before \"marché\"."},
		},
	},
	{
		ID:          "contraction-du",
		Category:    CategoryContraction,
		Statement:   "The preposition \"de\" contracts with \"le\" to form \"du\".",
		Explanation: "\"de le\" is never written or spoken; it always becomes \"du\". \"de la\" and \"de l'\" stay uncontracted.",
		Examples: []Example{
			{Incorrect: "Il revient de le bureau.", Correct: "Il revient du bureau.", Translation: "He is coming back from the office."},
			{Incorrect: "C'est le livre de le professeur.", Correct: "C'est le livre du professeur.", Translation: "It is the teacher's book."},
			{Correct: "Elle parle de la réunion.", Translation: "She is talking about the meeting."},
		},
		Exceptions: []string{
			"No contraction with \"la\": de la maison.",
			"No contraction before a vowel or mute h: de l'eau, de l'homme.",
		},
		CommonMistakes: []string{
			"Writing \"de le\" instead of \"du\".",
		},
		RelatedRules: []string{"contraction-des", "contraction-au", "partitive-du-de-la"},
		Difficulty:   1,
		PracticeItems: []PracticeItem{
			{Prompt: "Transform: Je reviens ___ (de + le) travail.", Answer: "du", Hint: "de + le fuses into one word."},
		},
	},
	{
		ID:          "contraction-aux",
		Category:    CategoryContraction,
		Statement:   "The preposition \"à\" contracts with \"les\" to form \"aux\".",
		Explanation: "Before any plural noun, \"à les\" fuses into \"aux\" regardless of the noun's gender.",
		Examples: []Example{
			{Incorrect: "Elle parle à les enfants.", Correct: "Elle parle aux enfants.", Translation: "She is speaking to the children."},
			{Incorrect: "Je pense à les vacances.", Correct: "Je pense aux vacances.", Translation: "I am thinking about the holidays."},
			{Correct: "Il écrit aux étudiants.", Translation: "He writes to the students."},
		},
		CommonMistakes: []string{
			"Writing \"à les\" instead of \"aux\".",
			"Using \"au\" before a plural noun.",
		},
		RelatedRules: []string{"contraction-au", "contraction-des"},
		Difficulty:   1,
		PracticeItems: []PracticeItem{
			{Prompt: "Transform: Il téléphone ___ (à + les) voisins.", Answer: "aux", Hint: "à + les fuses into one word."},
		},
	},
	{
		ID:          "contraction-des",
		Category:    CategoryContraction,
		Statement:   "The preposition \"de\" contracts with \"les\" to form \"des\".",
		Explanation: "\"de les\" always becomes \"des\", for both masculine and feminine plural nouns. Note that \"des\" is also the plural indefinite article, which is a separate use.",
		Examples: []Example{
			{Incorrect: "Il parle de les projets.", Correct: "Il parle des projets.", Translation: "He is talking about the projects."},
			{Correct: "La porte des bureaux est fermée.", Translation: "The door of the offices is closed."},
		},
		CommonMistakes: []string{
			"Writing \"de les\" instead of \"des\".",
		},
		RelatedRules: []string{"contraction-du", "contraction-aux"},
		Difficulty:   2,
		PracticeItems: []PracticeItem{
			{Prompt: "Transform: C'est la fin ___ (de + les) cours.", Answer: "des", Hint: "de + les fuses into one word."},
		},
	},

	// Articles & gender (2)
	{
		ID:          "article-gender",
		Category:    CategoryArticle,
		Statement:   "Definite articles agree with the noun's gender: \"le\" for masculine, \"la\" for feminine.",
		Explanation: "Every French noun has a grammatical gender, and the article must match it. Gender is lexical, not logical, so it must be learned with the noun: \"le livre\" but \"la table\".",
		Examples: []Example{
			{Incorrect: "Le maison est grande.", Correct: "La maison est grande.", Translation: "The house is big."},
			{Incorrect: "La problème est difficile.", Correct: "Le problème est difficile.", Translation: "The problem is difficult."},
			{Correct: "Le soleil brille.", Translation: "The sun is shining."},
		},
		Exceptions: []string{
			"Before a vowel or mute h both genders use l': l'ami, l'amie.",
			"Nouns in -tion, -sion, -té are almost always feminine.",
			"Nouns in -ème, -age (not \"plage\", \"image\") are usually masculine.",
		},
		CommonMistakes: []string{
			"Assuming gender from the meaning of the noun.",
			"Using \"la\" for masculine nouns ending in -e like \"le problème\".",
		},
		RelatedRules: []string{"article-indefinite", "agreement-adjective-gender"},
		Difficulty:   1,
		PracticeItems: []PracticeItem{
			{Prompt: "Choose the article: ___ voiture (car)", Answer: "la", Hint: "Nouns in -ure are usually feminine."},
			{Prompt: "Choose the article: ___ système", Answer: "le", Hint: "Nouns in -ème are usually masculine."},
		},
	},
	{
		ID:          "article-indefinite",
		Category:    CategoryArticle,
		Statement:   "Indefinite articles agree in gender and number: \"un\", \"une\", \"des\".",
		Explanation: "\"un\" goes with masculine singular nouns, \"une\" with feminine singular nouns, and \"des\" with any plural noun. English \"a/an\" never changes, which is why this needs attention.",
		Examples: []Example{
			{Incorrect: "J'ai un idée.", Correct: "J'ai une idée.", Translation: "I have an idea."},
			{Incorrect: "Elle a acheté une livre.", Correct: "Elle a acheté un livre.", Translation: "She bought a book."},
			{Correct: "Ils ont des amis à Paris.", Translation: "They have friends in Paris."},
		},
		Exceptions: []string{
			"\"des\" usually becomes \"de\" before a plural adjective: de belles fleurs.",
		},
		CommonMistakes: []string{
			"Matching the article to the English word rather than the French noun's gender.",
		},
		RelatedRules: []string{"article-gender", "partitive-negation"},
		Difficulty:   1,
		PracticeItems: []PracticeItem{
			{Prompt: "Choose the article: ___ question", Answer: "une", Hint: "Nouns in -tion are feminine."},
		},
	},

	// Conjugation (3)
	{
		ID:          "conjugation-present-er",
		Category:    CategoryConjugation,
		Statement:   "Regular -er verbs in the present tense take the endings -e, -es, -e, -ons, -ez, -ent.",
		Explanation: "Drop the -er from the infinitive and add the ending that matches the subject: je parle, tu parles, il parle, nous parlons, vous parlez, ils parlent. The forms in -e, -es and -ent all sound identical.",
		Examples: []Example{
			{Incorrect: "Tu parle trop vite.", Correct: "Tu parles trop vite.", Translation: "You speak too fast."},
			{Incorrect: "Nous mangons ensemble.", Correct: "Nous mangeons ensemble.", Translation: "We eat together."},
			{Correct: "Ils travaillent beaucoup.", Translation: "They work a lot."},
		},
		Exceptions: []string{
			"Verbs in -ger keep an e before -ons: nous mangeons.",
			"Verbs in -cer take a cedilla before -ons: nous commençons.",
		},
		CommonMistakes: []string{
			"Dropping the silent -s in \"tu parles\".",
			"Writing \"ils parle\" because -ent is silent.",
		},
		RelatedRules: []string{"conjugation-passe-compose", "conjugation-aller"},
		Difficulty:   1,
		PracticeItems: []PracticeItem{
			{Prompt: "Conjugate \"chanter\" for \"tu\": tu ___", Answer: "chantes", Hint: "The tu form always ends in -s."},
			{Prompt: "Conjugate \"manger\" for \"nous\": nous ___", Answer: "mangeons", Hint: "Keep the e to soften the g."},
		},
	},
	{
		ID:          "conjugation-passe-compose",
		Category:    CategoryConjugation,
		Statement:   "The passé composé uses \"avoir\" as auxiliary for most verbs and \"être\" for movement and reflexive verbs.",
		Explanation: "Verbs of coming and going (aller, venir, arriver, partir, monter, descendre, rester, tomber, naître, mourir...) and all reflexive verbs take \"être\"; everything else takes \"avoir\". With \"être\" the past participle agrees with the subject.",
		Examples: []Example{
			{Incorrect: "J'ai allé au marché.", Correct: "Je suis allé au marché.", Translation: "I went to the market."},
			{Incorrect: "Elle a arrivée en retard.", Correct: "Elle est arrivée en retard.", Translation: "She arrived late."},
			{Correct: "Nous avons mangé une pizza.", Translation: "We ate a pizza."},
		},
		Exceptions: []string{
			"Monter, descendre, sortir and passer take \"avoir\" when they have a direct object: j'ai monté les valises.",
		},
		CommonMistakes: []string{
			"Using \"avoir\" with movement verbs.",
			"Forgetting participle agreement with \"être\": elle est allée.",
		},
		RelatedRules: []string{"conjugation-present-er", "agreement-adjective-gender"},
		Difficulty:   2,
		PracticeItems: []PracticeItem{
			{Prompt: "Fix: Ils ont partis sans nous.", Answer: "Ils sont partis sans nous.", Hint: "\"partir\" is a movement verb."},
		},
	},
	{
		ID:          "conjugation-aller",
		Category:    CategoryConjugation,
		Statement:   "\"Aller\" is irregular in the present tense: je vais, tu vas, il va, nous allons, vous allez, ils vont.",
		Explanation: "\"Aller\" is the only -er verb that is fully irregular. Its singular and third-person plural forms come from a different stem (vais, vas, va, vont) while nous/vous keep the all- stem.",
		Examples: []Example{
			{Incorrect: "Je alle à l'école.", Correct: "Je vais à l'école.", Translation: "I go to school."},
			{Incorrect: "Ils allent au restaurant.", Correct: "Ils vont au restaurant.", Translation: "They go to the restaurant."},
			{Correct: "Nous allons bien.", Translation: "We are doing well."},
		},
		CommonMistakes: []string{
			"Conjugating \"aller\" like a regular -er verb.",
		},
		RelatedRules: []string{"conjugation-present-er", "contraction-au"},
		Difficulty:   2,
		PracticeItems: []PracticeItem{
			{Prompt: "Conjugate \"aller\" for \"ils\": ils ___", Answer: "vont", Hint: "The stem changes completely."},
		},
	},

	// Agreement (2)
	{
		ID:          "agreement-adjective-gender",
		Category:    CategoryAgreement,
		Statement:   "Adjectives agree in gender with the noun they modify, usually by adding -e for the feminine.",
		Explanation: "A masculine adjective like \"grand\" becomes \"grande\" with a feminine noun. Adjectives already ending in -e stay unchanged; several endings transform (-eux → -euse, -if → -ive, -er → -ère).",
		Examples: []Example{
			{Incorrect: "La maison est grand.", Correct: "La maison est grande.", Translation: "The house is big."},
			{Incorrect: "Elle est très heureux.", Correct: "Elle est très heureuse.", Translation: "She is very happy."},
			{Correct: "Le jardin est magnifique.", Translation: "The garden is magnificent."},
		},
		Exceptions: []string{
			"Adjectives in -e are invariable in gender: rapide, facile.",
			"Some are fully irregular: beau/belle, vieux/vieille, blanc/blanche.",
		},
		CommonMistakes: []string{
			"Leaving the masculine form with feminine nouns.",
			"Forgetting the ending change for -eux and -if adjectives.",
		},
		RelatedRules: []string{"agreement-adjective-plural", "article-gender"},
		Difficulty:   2,
		PracticeItems: []PracticeItem{
			{Prompt: "Agree the adjective: une voiture ___ (vert)", Answer: "verte", Hint: "Add -e for the feminine."},
			{Prompt: "Agree the adjective: une idée ___ (créatif)", Answer: "créative", Hint: "-if becomes -ive."},
		},
	},
	{
		ID:          "agreement-adjective-plural",
		Category:    CategoryAgreement,
		Statement:   "Adjectives agree in number with the noun they modify, usually by adding -s for the plural.",
		Explanation: "Plural agreement stacks on top of gender agreement: \"grandes\" is feminine plural. Adjectives in -s or -x are unchanged in the masculine plural; -al usually becomes -aux.",
		Examples: []Example{
			{Incorrect: "Les chats sont noir.", Correct: "Les chats sont noirs.", Translation: "The cats are black."},
			{Incorrect: "Des problèmes internationals.", Correct: "Des problèmes internationaux.", Translation: "International problems."},
			{Correct: "Les rues sont étroites.", Translation: "The streets are narrow."},
		},
		Exceptions: []string{
			"Adjectives in -s or -x do not change in the masculine plural: des murs gris.",
			"A few -al adjectives take -s: fatals, navals.",
		},
		CommonMistakes: []string{
			"Forgetting the silent plural -s.",
			"Writing -als instead of -aux.",
		},
		RelatedRules: []string{"agreement-adjective-gender"},
		Difficulty:   2,
		PracticeItems: []PracticeItem{
			{Prompt: "Agree the adjective: des livres ___ (intéressant)", Answer: "intéressants", Hint: "Plural adds a silent -s."},
		},
	},

	// Prepositions (2)
	{
		ID:          "preposition-a-vs-de",
		Category:    CategoryPreposition,
		Statement:   "Verbs select their preposition: some take \"à\", others take \"de\", and the choice changes the meaning.",
		Explanation: "The preposition is part of the verb's construction and cannot be guessed from English: jouer à (a game) vs jouer de (an instrument), penser à (think about) vs parler de (talk about), commencer à vs finir de.",
		Examples: []Example{
			{Incorrect: "Je joue de football.", Correct: "Je joue au football.", Translation: "I play football."},
			{Incorrect: "Elle joue à la guitare.", Correct: "Elle joue de la guitare.", Translation: "She plays the guitar."},
			{Correct: "Nous parlons de notre voyage.", Translation: "We are talking about our trip."},
		},
		CommonMistakes: []string{
			"Translating the English preposition literally.",
			"Mixing up jouer à (sports) and jouer de (instruments).",
		},
		RelatedRules: []string{"preposition-en-vs-dans", "contraction-au"},
		Difficulty:   3,
		PracticeItems: []PracticeItem{
			{Prompt: "Choose the preposition: Il commence ___ pleuvoir.", Answer: "à", Hint: "commencer à + infinitive."},
		},
	},
	{
		ID:          "preposition-en-vs-dans",
		Category:    CategoryPreposition,
		Statement:   "\"en\" expresses duration or a general location; \"dans\" expresses a delay before an action or a concrete interior.",
		Explanation: "\"en dix minutes\" means the action takes ten minutes; \"dans dix minutes\" means it starts ten minutes from now. For places, \"en France\" (feminine country) but \"dans la cuisine\" (specific interior).",
		Examples: []Example{
			{Incorrect: "Je finis en dix minutes, attends-moi.", Correct: "Je finis dans dix minutes, attends-moi.", Translation: "I finish in ten minutes, wait for me."},
			{Incorrect: "Il habite dans France.", Correct: "Il habite en France.", Translation: "He lives in France."},
			{Correct: "Elle a lu le livre en deux jours.", Translation: "She read the book in two days."},
		},
		CommonMistakes: []string{
			"Using \"en\" for a future delay.",
			"Using \"dans\" with country names.",
		},
		RelatedRules: []string{"preposition-a-vs-de"},
		Difficulty:   3,
		PracticeItems: []PracticeItem{
			{Prompt: "Choose the preposition: Le train part ___ cinq minutes.", Answer: "dans", Hint: "A delay before departure."},
		},
	},

	// Negation (2)
	{
		ID:          "negation-ne-pas",
		Category:    CategoryNegation,
		Statement:   "Negation wraps the conjugated verb with \"ne ... pas\".",
		Explanation: "\"ne\" goes before the conjugated verb (becoming n' before a vowel) and \"pas\" right after it. In compound tenses the pair wraps the auxiliary: je n'ai pas mangé.",
		Examples: []Example{
			{Incorrect: "Je sais pas.", Correct: "Je ne sais pas.", Translation: "I don't know."},
			{Incorrect: "Il ne aime pas le café.", Correct: "Il n'aime pas le café.", Translation: "He doesn't like coffee."},
			{Correct: "Nous n'avons pas fini.", Translation: "We haven't finished."},
		},
		Exceptions: []string{
			"Spoken French often drops \"ne\", but written French requires it.",
		},
		CommonMistakes: []string{
			"Dropping \"ne\" in writing.",
			"Forgetting the elision n' before a vowel.",
		},
		RelatedRules: []string{"negation-ne-jamais", "partitive-negation"},
		Difficulty:   1,
		PracticeItems: []PracticeItem{
			{Prompt: "Fix: Elle veut pas venir.", Answer: "Elle ne veut pas venir.", Hint: "Written French needs both halves."},
		},
	},
	{
		ID:          "negation-ne-jamais",
		Category:    CategoryNegation,
		Statement:   "\"jamais\", \"rien\", \"plus\" and \"personne\" replace \"pas\" in the negation frame.",
		Explanation: "The second element of the negation varies: ne ... jamais (never), ne ... rien (nothing), ne ... plus (no longer), ne ... personne (nobody). They are never combined with \"pas\".",
		Examples: []Example{
			{Incorrect: "Je ne mange pas jamais de viande.", Correct: "Je ne mange jamais de viande.", Translation: "I never eat meat."},
			{Incorrect: "Il ne dit pas rien.", Correct: "Il ne dit rien.", Translation: "He says nothing."},
			{Correct: "Elle ne fume plus.", Translation: "She no longer smokes."},
		},
		CommonMistakes: []string{
			"Keeping \"pas\" alongside jamais/rien/plus.",
		},
		RelatedRules: []string{"negation-ne-pas"},
		Difficulty:   2,
		PracticeItems: []PracticeItem{
			{Prompt: "Fix: Nous n'avons pas rien vu.", Answer: "Nous n'avons rien vu.", Hint: "\"rien\" replaces \"pas\"."},
		},
	},

	// Partitive (2)
	{
		ID:          "partitive-du-de-la",
		Category:    CategoryPartitive,
		Statement:   "Unspecified quantities take a partitive article: \"du\", \"de la\", \"de l'\" or \"des\".",
		Explanation: "Where English says \"some bread\" or just \"bread\", French requires a partitive: je mange du pain, elle boit de la limonade. The form follows the noun's gender and number.",
		Examples: []Example{
			{Incorrect: "Je mange pain.", Correct: "Je mange du pain.", Translation: "I eat bread."},
			{Incorrect: "Elle boit de le lait.", Correct: "Elle boit du lait.", Translation: "She drinks milk."},
			{Correct: "Nous achetons de la confiture.", Translation: "We are buying jam."},
		},
		Exceptions: []string{
			"After expressions of quantity use \"de\" alone: beaucoup de pain, un kilo de pommes.",
		},
		CommonMistakes: []string{
			"Omitting the partitive entirely, as English allows.",
			"Writing \"de le\" instead of \"du\".",
		},
		RelatedRules: []string{"partitive-negation", "contraction-du"},
		Difficulty:   2,
		PracticeItems: []PracticeItem{
			{Prompt: "Choose the partitive: Tu veux ___ eau ?", Answer: "de l'", Hint: "\"eau\" starts with a vowel."},
		},
	},
	{
		ID:          "partitive-negation",
		Category:    CategoryPartitive,
		Statement:   "After a negation, partitive and indefinite articles reduce to \"de\".",
		Explanation: "\"du\", \"de la\", \"des\", \"un\" and \"une\" all become plain \"de\" (or d') under negation: je mange du pain → je ne mange pas de pain.",
		Examples: []Example{
			{Incorrect: "Je n'ai pas du temps.", Correct: "Je n'ai pas de temps.", Translation: "I don't have time."},
			{Incorrect: "Elle n'a pas une voiture.", Correct: "Elle n'a pas de voiture.", Translation: "She doesn't have a car."},
			{Correct: "Nous n'avons plus d'argent.", Translation: "We have no money left."},
		},
		Exceptions: []string{
			"With \"être\" the article survives: ce n'est pas du café, c'est du thé.",
		},
		CommonMistakes: []string{
			"Keeping \"du/de la/des\" after \"pas\".",
		},
		RelatedRules: []string{"partitive-du-de-la", "negation-ne-pas"},
		Difficulty:   3,
		PracticeItems: []PracticeItem{
			{Prompt: "Fix: Il ne boit pas du vin.", Answer: "Il ne boit pas de vin.", Hint: "Negation reduces the partitive."},
		},
	},

	// Pronouns (2)
	{
		ID:          "pronoun-y",
		Category:    CategoryPronoun,
		Statement:   "\"y\" replaces \"à\" + a place or thing and goes before the conjugated verb.",
		Explanation: "Instead of repeating \"à + noun\", French uses \"y\": Je vais à Paris → J'y vais. \"y\" never replaces a person.",
		Examples: []Example{
			{Incorrect: "Je vais à Paris demain, je vais à Paris en train.", Correct: "Je vais à Paris demain, j'y vais en train.", Translation: "I'm going to Paris tomorrow, I'm going there by train."},
			{Correct: "Tu penses à ton examen ? Oui, j'y pense.", Translation: "Are you thinking about your exam? Yes, I'm thinking about it."},
		},
		Exceptions: []string{
			"For people, use a stressed pronoun instead: je pense à lui.",
		},
		CommonMistakes: []string{
			"Placing \"y\" after the verb.",
			"Using \"y\" for people.",
		},
		RelatedRules: []string{"pronoun-en", "preposition-a-vs-de"},
		Difficulty:   3,
		PracticeItems: []PracticeItem{
			{Prompt: "Replace with a pronoun: Je réponds à la question. → J'___ réponds.", Answer: "y", Hint: "\"à + thing\" becomes y."},
		},
	},
	{
		ID:          "pronoun-en",
		Category:    CategoryPronoun,
		Statement:   "\"en\" replaces \"de\" + a noun (including partitives and quantities) and goes before the conjugated verb.",
		Explanation: "\"en\" stands in for anything introduced by \"de\": Tu veux du café ? → Oui, j'en veux. With numbers the quantity stays: j'en ai deux.",
		Examples: []Example{
			{Incorrect: "Tu as des frères ? Oui, j'ai deux.", Correct: "Tu as des frères ? Oui, j'en ai deux.", Translation: "Do you have brothers? Yes, I have two."},
			{Correct: "Il parle de son projet ? Oui, il en parle souvent.", Translation: "Does he talk about his project? Yes, he often talks about it."},
		},
		CommonMistakes: []string{
			"Dropping \"en\" when a quantity is kept: j'ai deux instead of j'en ai deux.",
			"Placing \"en\" after the verb.",
		},
		RelatedRules: []string{"pronoun-y", "partitive-du-de-la"},
		Difficulty:   4,
		PracticeItems: []PracticeItem{
			{Prompt: "Replace with a pronoun: Je veux du pain. → J'___ veux.", Answer: "en", Hint: "\"de + thing\" becomes en."},
		},
	},
}
