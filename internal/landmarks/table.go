package landmarks

// defaultLandmarks is the curated table, grouped the way it is presented to
// users. Search results follow this order.
var defaultLandmarks = []Landmark{
	{
		Name:        "Eiffel Tower",
		City:        "Paris",
		Country:     "France",
		Latitude:    48.8584,
		Longitude:   2.2945,
		Category:    CategoryMonument,
		Description: "Iconic iron lattice tower and symbol of Paris",
		Aliases:     []string{"Tour Eiffel", "Eiffel"},
	},
	{
		Name:        "Statue of Liberty",
		City:        "New York",
		Country:     "United States",
		Latitude:    40.6892,
		Longitude:   -74.0445,
		Category:    CategoryMonument,
		Description: "Symbol of freedom and democracy",
		Aliases:     []string{"Liberty Island", "Lady Liberty"},
	},
	{
		Name:        "Big Ben",
		City:        "London",
		Country:     "United Kingdom",
		Latitude:    51.4994,
		Longitude:   -0.1245,
		Category:    CategoryMonument,
		Description: "Famous clock tower at the Palace of Westminster",
		Aliases:     []string{"Elizabeth Tower", "Westminster Clock"},
	},
	{
		Name:        "Colosseum",
		City:        "Rome",
		Country:     "Italy",
		Latitude:    41.8902,
		Longitude:   12.4922,
		Category:    CategoryHistorical,
		Description: "Ancient Roman amphitheater",
		Aliases:     []string{"Flavian Amphitheatre", "Roman Colosseum"},
	},
	{
		Name:        "Taj Mahal",
		City:        "Agra",
		Country:     "India",
		Latitude:    27.1751,
		Longitude:   78.0421,
		Category:    CategoryMonument,
		Description: "White marble mausoleum and symbol of love",
		Aliases:     []string{"Taj"},
	},
	{
		Name:        "Christ the Redeemer",
		City:        "Rio de Janeiro",
		Country:     "Brazil",
		Latitude:    -22.9519,
		Longitude:   -43.2105,
		Category:    CategoryMonument,
		Description: "Art Deco statue of Jesus Christ",
		Aliases:     []string{"Cristo Redentor", "Christ Redeemer"},
	},
	{
		Name:        "Machu Picchu",
		City:        "Cusco",
		Country:     "Peru",
		Latitude:    -13.1631,
		Longitude:   -72.5450,
		Category:    CategoryHistorical,
		Description: "Ancient Incan citadel in the Andes",
		Aliases:     []string{"Machu Picchu", "Lost City of the Incas"},
	},
	{
		Name:        "Great Wall of China",
		City:        "Beijing",
		Country:     "China",
		Latitude:    40.4319,
		Longitude:   116.5704,
		Category:    CategoryHistorical,
		Description: "Ancient fortification system",
		Aliases:     []string{"Great Wall", "Chinese Wall", "万里长城", "Wanli Changcheng"},
	},
	{
		Name:        "Forbidden City",
		City:        "Beijing",
		Country:     "China",
		Latitude:    39.9163,
		Longitude:   116.3972,
		Category:    CategoryHistorical,
		Description: "Imperial palace complex of the Ming and Qing dynasties",
		Aliases:     []string{"Palace Museum", "紫禁城", "Zijin Cheng", "Gugong"},
	},
	{
		Name:        "Temple of Heaven",
		City:        "Beijing",
		Country:     "China",
		Latitude:    39.8823,
		Longitude:   116.4066,
		Category:    CategoryReligious,
		Description: "Imperial complex of religious buildings",
		Aliases:     []string{"天坛", "Tiantan", "Heaven Temple"},
	},
	{
		Name:        "Terracotta Army",
		City:        "Xi'an",
		Country:     "China",
		Latitude:    34.3847,
		Longitude:   109.2731,
		Category:    CategoryHistorical,
		Description: "Collection of terracotta sculptures depicting the armies of Qin Shi Huang",
		Aliases:     []string{"兵马俑", "Bingmayong", "Terracotta Warriors"},
	},
	{
		Name:        "Potala Palace",
		City:        "Lhasa",
		Country:     "China",
		Latitude:    29.6554,
		Longitude:   91.1169,
		Category:    CategoryReligious,
		Description: "Former residence of the Dalai Lama and religious center",
		Aliases:     []string{"布达拉宫", "Budala Gong", "Lhasa Palace"},
	},
	{
		Name:        "Li River",
		City:        "Guilin",
		Country:     "China",
		Latitude:    25.2342,
		Longitude:   110.1994,
		Category:    CategoryNatural,
		Description: "Scenic river with karst mountain landscapes",
		Aliases:     []string{"漓江", "Lijiang", "Guilin River"},
	},
	{
		Name:        "Zhangjiajie National Forest Park",
		City:        "Zhangjiajie",
		Country:     "China",
		Latitude:    29.1274,
		Longitude:   110.4792,
		Category:    CategoryNatural,
		Description: "National park known for its pillar-like rock formations",
		Aliases:     []string{"张家界", "Zhangjiajie", "Avatar Mountains"},
	},
	{
		Name:        "West Lake",
		City:        "Hangzhou",
		Country:     "China",
		Latitude:    30.2741,
		Longitude:   120.1551,
		Category:    CategoryNatural,
		Description: "Famous freshwater lake surrounded by gardens and temples",
		Aliases:     []string{"西湖", "Xihu", "Hangzhou Lake"},
	},
	{
		Name:        "Bund",
		City:        "Shanghai",
		Country:     "China",
		Latitude:    31.2397,
		Longitude:   121.4998,
		Category:    CategoryModern,
		Description: "Historic waterfront area with colonial architecture",
		Aliases:     []string{"外滩", "Waitan", "Shanghai Bund"},
	},
	{
		Name:        "Oriental Pearl Tower",
		City:        "Shanghai",
		Country:     "China",
		Latitude:    31.2397,
		Longitude:   121.4998,
		Category:    CategoryModern,
		Description: "Distinctive TV tower with futuristic design",
		Aliases:     []string{"东方明珠", "Dongfang Mingzhu", "Pearl Tower"},
	},
	{
		Name:        "Pyramids of Giza",
		City:        "Cairo",
		Country:     "Egypt",
		Latitude:    29.9792,
		Longitude:   31.1342,
		Category:    CategoryHistorical,
		Description: "Ancient Egyptian pyramids",
		Aliases:     []string{"Giza Pyramids", "Great Pyramid", "Sphinx"},
	},
	{
		Name:        "Stonehenge",
		City:        "Salisbury",
		Country:     "United Kingdom",
		Latitude:    51.1789,
		Longitude:   -1.8262,
		Category:    CategoryHistorical,
		Description: "Prehistoric stone circle",
		Aliases:     []string{"Stone Circle"},
	},
	{
		Name:        "Burj Khalifa",
		City:        "Dubai",
		Country:     "United Arab Emirates",
		Latitude:    25.1972,
		Longitude:   55.2744,
		Category:    CategoryModern,
		Description: "World's tallest building",
		Aliases:     []string{"Burj Dubai", "Khalifa Tower"},
	},
	{
		Name:        "Empire State Building",
		City:        "New York",
		Country:     "United States",
		Latitude:    40.7484,
		Longitude:   -73.9857,
		Category:    CategoryBuilding,
		Description: "Art Deco skyscraper in Manhattan",
		Aliases:     []string{"Empire State", "ESB"},
	},
	{
		Name:        "Sydney Opera House",
		City:        "Sydney",
		Country:     "Australia",
		Latitude:    -33.8568,
		Longitude:   151.2153,
		Category:    CategoryBuilding,
		Description: "Modern expressionist performing arts center",
		Aliases:     []string{"Opera House", "Sydney Opera"},
	},
	{
		Name:        "CN Tower",
		City:        "Toronto",
		Country:     "Canada",
		Latitude:    43.6426,
		Longitude:   -79.3871,
		Category:    CategoryBuilding,
		Description: "Communications and observation tower",
		Aliases:     []string{"Canadian National Tower"},
	},
	{
		Name:        "Petronas Towers",
		City:        "Kuala Lumpur",
		Country:     "Malaysia",
		Latitude:    3.1579,
		Longitude:   101.7116,
		Category:    CategoryModern,
		Description: "Twin skyscrapers and former world's tallest buildings",
		Aliases:     []string{"Petronas Twin Towers", "KLCC Towers"},
	},
	{
		Name:        "Sagrada Familia",
		City:        "Barcelona",
		Country:     "Spain",
		Latitude:    41.4036,
		Longitude:   2.1744,
		Category:    CategoryReligious,
		Description: "Unfinished basilica designed by Antoni Gaudí",
		Aliases:     []string{"Sagrada", "Gaudí's Cathedral"},
	},
	{
		Name:        "Notre-Dame Cathedral",
		City:        "Paris",
		Country:     "France",
		Latitude:    48.8530,
		Longitude:   2.3499,
		Category:    CategoryReligious,
		Description: "Medieval Catholic cathedral",
		Aliases:     []string{"Notre Dame", "Notre Dame de Paris"},
	},
	{
		Name:        "St. Peter's Basilica",
		City:        "Vatican City",
		Country:     "Vatican",
		Latitude:    41.9022,
		Longitude:   12.4539,
		Category:    CategoryReligious,
		Description: "Renaissance church in Vatican City",
		Aliases:     []string{"St. Peter's", "Vatican Basilica"},
	},
	{
		Name:        "Mount Everest",
		City:        "Himalayas",
		Country:     "Nepal/China",
		Latitude:    27.9881,
		Longitude:   86.9250,
		Category:    CategoryNatural,
		Description: "World's highest mountain peak",
		Aliases:     []string{"Everest", "Sagarmatha", "Chomolungma"},
	},
	{
		Name:        "Grand Canyon",
		City:        "Arizona",
		Country:     "United States",
		Latitude:    36.1069,
		Longitude:   -112.1129,
		Category:    CategoryNatural,
		Description: "Massive canyon carved by the Colorado River",
		Aliases:     []string{"Grand Canyon National Park"},
	},
	{
		Name:        "Niagara Falls",
		City:        "Ontario/New York",
		Country:     "Canada/United States",
		Latitude:    43.0962,
		Longitude:   -79.0377,
		Category:    CategoryNatural,
		Description: "Famous waterfalls on the Niagara River",
		Aliases:     []string{"Niagara", "Horseshoe Falls"},
	},
	{
		Name:        "Mount Fuji",
		City:        "Tokyo",
		Country:     "Japan",
		Latitude:    35.3606,
		Longitude:   138.7274,
		Category:    CategoryNatural,
		Description: "Active volcano and Japan's highest peak",
		Aliases:     []string{"Fuji", "Fuji-san", "Mount Fuji-san"},
	},
	{
		Name:        "Uluru",
		City:        "Northern Territory",
		Country:     "Australia",
		Latitude:    -25.3444,
		Longitude:   131.0369,
		Category:    CategoryNatural,
		Description: "Large sandstone rock formation",
		Aliases:     []string{"Ayers Rock", "Uluru-Kata Tjuta"},
	},
	{
		Name:        "Victoria Falls",
		City:        "Livingstone",
		Country:     "Zambia/Zimbabwe",
		Latitude:    -17.9243,
		Longitude:   25.8572,
		Category:    CategoryNatural,
		Description: "Waterfall on the Zambezi River",
		Aliases:     []string{"Mosi-oa-Tunya", "Victoria Falls"},
	},
	{
		Name:        "Mount Kilimanjaro",
		City:        "Kilimanjaro",
		Country:     "Tanzania",
		Latitude:    -3.0674,
		Longitude:   37.3556,
		Category:    CategoryNatural,
		Description: "Africa's highest mountain",
		Aliases:     []string{"Kilimanjaro", "Kili"},
	},
	{
		Name:        "Times Square",
		City:        "New York",
		Country:     "United States",
		Latitude:    40.7580,
		Longitude:   -73.9855,
		Category:    CategoryModern,
		Description: "Major commercial intersection and tourist destination",
		Aliases:     []string{"Times Sq", "The Crossroads of the World"},
	},
	{
		Name:        "Trafalgar Square",
		City:        "London",
		Country:     "United Kingdom",
		Latitude:    51.5081,
		Longitude:   -0.1281,
		Category:    CategoryMonument,
		Description: "Public square with Nelson's Column",
		Aliases:     []string{"Trafalgar"},
	},
	{
		Name:        "Red Square",
		City:        "Moscow",
		Country:     "Russia",
		Latitude:    55.7539,
		Longitude:   37.6208,
		Category:    CategoryHistorical,
		Description: "Historic square in Moscow",
		Aliases:     []string{"Krasnaya Ploshchad"},
	},
	{
		Name:        "Piazza San Marco",
		City:        "Venice",
		Country:     "Italy",
		Latitude:    45.4342,
		Longitude:   12.3388,
		Category:    CategoryHistorical,
		Description: "Main public square in Venice",
		Aliases:     []string{"St. Mark's Square", "Piazza San Marco"},
	},
	{
		Name:        "Golden Gate Bridge",
		City:        "San Francisco",
		Country:     "United States",
		Latitude:    37.8199,
		Longitude:   -122.4783,
		Category:    CategoryModern,
		Description: "Suspension bridge spanning the Golden Gate strait",
		Aliases:     []string{"Golden Gate", "GGB"},
	},
	{
		Name:        "Brooklyn Bridge",
		City:        "New York",
		Country:     "United States",
		Latitude:    40.7061,
		Longitude:   -73.9969,
		Category:    CategoryModern,
		Description: "Historic suspension bridge connecting Manhattan and Brooklyn",
		Aliases:     []string{"Brooklyn"},
	},
	{
		Name:        "Tower Bridge",
		City:        "London",
		Country:     "United Kingdom",
		Latitude:    51.5055,
		Longitude:   -0.0754,
		Category:    CategoryModern,
		Description: "Combined bascule and suspension bridge",
		Aliases:     []string{"London Tower Bridge"},
	},
	{
		Name:        "Harbour Bridge",
		City:        "Sydney",
		Country:     "Australia",
		Latitude:    -33.8523,
		Longitude:   151.2108,
		Category:    CategoryModern,
		Description: "Steel arch bridge across Sydney Harbour",
		Aliases:     []string{"Sydney Harbour Bridge", "The Coathanger"},
	},
}
