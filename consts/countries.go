package consts

// CountryISO3 maps country names as published by the upstream feeds to
// ISO 3166-1 alpha-3 codes. Names that differ from the ISO short name live in
// CountryCodeExceptions.
var CountryISO3 map[string]string

func init() {
	CountryISO3 = make(map[string]string)

	CountryISO3["Afghanistan"] = "AFG"
	CountryISO3["Albania"] = "ALB"
	CountryISO3["Algeria"] = "DZA"
	CountryISO3["Andorra"] = "AND"
	CountryISO3["Angola"] = "AGO"
	CountryISO3["Antigua and Barbuda"] = "ATG"
	CountryISO3["Argentina"] = "ARG"
	CountryISO3["Armenia"] = "ARM"
	CountryISO3["Australia"] = "AUS"
	CountryISO3["Austria"] = "AUT"
	CountryISO3["Azerbaijan"] = "AZE"
	CountryISO3["Bahamas"] = "BHS"
	CountryISO3["Bahrain"] = "BHR"
	CountryISO3["Bangladesh"] = "BGD"
	CountryISO3["Barbados"] = "BRB"
	CountryISO3["Belarus"] = "BLR"
	CountryISO3["Belgium"] = "BEL"
	CountryISO3["Belize"] = "BLZ"
	CountryISO3["Benin"] = "BEN"
	CountryISO3["Bhutan"] = "BTN"
	CountryISO3["Bosnia and Herzegovina"] = "BIH"
	CountryISO3["Botswana"] = "BWA"
	CountryISO3["Brazil"] = "BRA"
	CountryISO3["Bulgaria"] = "BGR"
	CountryISO3["Burkina Faso"] = "BFA"
	CountryISO3["Burundi"] = "BDI"
	CountryISO3["Cambodia"] = "KHM"
	CountryISO3["Cameroon"] = "CMR"
	CountryISO3["Canada"] = "CAN"
	CountryISO3["Central African Republic"] = "CAF"
	CountryISO3["Chad"] = "TCD"
	CountryISO3["Chile"] = "CHL"
	CountryISO3["China"] = "CHN"
	CountryISO3["Colombia"] = "COL"
	CountryISO3["Comoros"] = "COM"
	CountryISO3["Costa Rica"] = "CRI"
	CountryISO3["Croatia"] = "HRV"
	CountryISO3["Cuba"] = "CUB"
	CountryISO3["Cyprus"] = "CYP"
	CountryISO3["Czechia"] = "CZE"
	CountryISO3["Denmark"] = "DNK"
	CountryISO3["Djibouti"] = "DJI"
	CountryISO3["Dominica"] = "DMA"
	CountryISO3["Dominican Republic"] = "DOM"
	CountryISO3["Ecuador"] = "ECU"
	CountryISO3["Egypt"] = "EGY"
	CountryISO3["El Salvador"] = "SLV"
	CountryISO3["Equatorial Guinea"] = "GNQ"
	CountryISO3["Eritrea"] = "ERI"
	CountryISO3["Estonia"] = "EST"
	CountryISO3["Eswatini"] = "SWZ"
	CountryISO3["Ethiopia"] = "ETH"
	CountryISO3["Fiji"] = "FJI"
	CountryISO3["Finland"] = "FIN"
	CountryISO3["France"] = "FRA"
	CountryISO3["Gabon"] = "GAB"
	CountryISO3["Gambia"] = "GMB"
	CountryISO3["Georgia"] = "GEO"
	CountryISO3["Germany"] = "DEU"
	CountryISO3["Ghana"] = "GHA"
	CountryISO3["Greece"] = "GRC"
	CountryISO3["Greenland"] = "GRL"
	CountryISO3["Grenada"] = "GRD"
	CountryISO3["Guatemala"] = "GTM"
	CountryISO3["Guinea"] = "GIN"
	CountryISO3["Guinea-Bissau"] = "GNB"
	CountryISO3["Guyana"] = "GUY"
	CountryISO3["Haiti"] = "HTI"
	CountryISO3["Honduras"] = "HND"
	CountryISO3["Hungary"] = "HUN"
	CountryISO3["Iceland"] = "ISL"
	CountryISO3["India"] = "IND"
	CountryISO3["Indonesia"] = "IDN"
	CountryISO3["Iraq"] = "IRQ"
	CountryISO3["Ireland"] = "IRL"
	CountryISO3["Israel"] = "ISR"
	CountryISO3["Italy"] = "ITA"
	CountryISO3["Jamaica"] = "JAM"
	CountryISO3["Japan"] = "JPN"
	CountryISO3["Jordan"] = "JOR"
	CountryISO3["Kazakhstan"] = "KAZ"
	CountryISO3["Kenya"] = "KEN"
	CountryISO3["Kuwait"] = "KWT"
	CountryISO3["Kyrgyzstan"] = "KGZ"
	CountryISO3["Latvia"] = "LVA"
	CountryISO3["Lebanon"] = "LBN"
	CountryISO3["Lesotho"] = "LSO"
	CountryISO3["Liberia"] = "LBR"
	CountryISO3["Libya"] = "LBY"
	CountryISO3["Liechtenstein"] = "LIE"
	CountryISO3["Lithuania"] = "LTU"
	CountryISO3["Luxembourg"] = "LUX"
	CountryISO3["Madagascar"] = "MDG"
	CountryISO3["Malawi"] = "MWI"
	CountryISO3["Malaysia"] = "MYS"
	CountryISO3["Maldives"] = "MDV"
	CountryISO3["Mali"] = "MLI"
	CountryISO3["Malta"] = "MLT"
	CountryISO3["Mauritania"] = "MRT"
	CountryISO3["Mauritius"] = "MUS"
	CountryISO3["Mexico"] = "MEX"
	CountryISO3["Monaco"] = "MCO"
	CountryISO3["Mongolia"] = "MNG"
	CountryISO3["Montenegro"] = "MNE"
	CountryISO3["Morocco"] = "MAR"
	CountryISO3["Mozambique"] = "MOZ"
	CountryISO3["Namibia"] = "NAM"
	CountryISO3["Nepal"] = "NPL"
	CountryISO3["Netherlands"] = "NLD"
	CountryISO3["New Zealand"] = "NZL"
	CountryISO3["Nicaragua"] = "NIC"
	CountryISO3["Niger"] = "NER"
	CountryISO3["Nigeria"] = "NGA"
	CountryISO3["North Macedonia"] = "MKD"
	CountryISO3["Norway"] = "NOR"
	CountryISO3["Oman"] = "OMN"
	CountryISO3["Pakistan"] = "PAK"
	CountryISO3["Panama"] = "PAN"
	CountryISO3["Papua New Guinea"] = "PNG"
	CountryISO3["Paraguay"] = "PRY"
	CountryISO3["Peru"] = "PER"
	CountryISO3["Philippines"] = "PHL"
	CountryISO3["Poland"] = "POL"
	CountryISO3["Portugal"] = "PRT"
	CountryISO3["Qatar"] = "QAT"
	CountryISO3["Romania"] = "ROU"
	CountryISO3["Rwanda"] = "RWA"
	CountryISO3["Saint Kitts and Nevis"] = "KNA"
	CountryISO3["Saint Lucia"] = "LCA"
	CountryISO3["Saint Vincent and the Grenadines"] = "VCT"
	CountryISO3["San Marino"] = "SMR"
	CountryISO3["Sao Tome and Principe"] = "STP"
	CountryISO3["Saudi Arabia"] = "SAU"
	CountryISO3["Senegal"] = "SEN"
	CountryISO3["Serbia"] = "SRB"
	CountryISO3["Seychelles"] = "SYC"
	CountryISO3["Sierra Leone"] = "SLE"
	CountryISO3["Singapore"] = "SGP"
	CountryISO3["Slovakia"] = "SVK"
	CountryISO3["Slovenia"] = "SVN"
	CountryISO3["Somalia"] = "SOM"
	CountryISO3["South Africa"] = "ZAF"
	CountryISO3["South Sudan"] = "SSD"
	CountryISO3["Spain"] = "ESP"
	CountryISO3["Sri Lanka"] = "LKA"
	CountryISO3["Sudan"] = "SDN"
	CountryISO3["Suriname"] = "SUR"
	CountryISO3["Sweden"] = "SWE"
	CountryISO3["Switzerland"] = "CHE"
	CountryISO3["Tajikistan"] = "TJK"
	CountryISO3["Thailand"] = "THA"
	CountryISO3["Togo"] = "TGO"
	CountryISO3["Trinidad and Tobago"] = "TTO"
	CountryISO3["Tunisia"] = "TUN"
	CountryISO3["Turkey"] = "TUR"
	CountryISO3["Uganda"] = "UGA"
	CountryISO3["Ukraine"] = "UKR"
	CountryISO3["United Arab Emirates"] = "ARE"
	CountryISO3["United Kingdom"] = "GBR"
	CountryISO3["Uruguay"] = "URY"
	CountryISO3["Uzbekistan"] = "UZB"
	CountryISO3["Yemen"] = "YEM"
	CountryISO3["Zambia"] = "ZMB"
	CountryISO3["Zimbabwe"] = "ZWE"
}

// CountryCodeExceptions maps feed names which do not match an ISO short name:
// abbreviations, reordered names, renamed countries and names carrying a
// disambiguation mark.
var CountryCodeExceptions = map[string]string{
	"US":                               "USA",
	"Korea, South":                     "KOR",
	"Korea, North":                     "PRK",
	"Republic of Korea":                "KOR",
	"South Korea":                      "KOR",
	"Taiwan*":                          "TWN",
	"Taiwan":                           "TWN",
	"Taipei and environs":              "TWN",
	"Mainland China":                   "CHN",
	"Hong Kong SAR":                    "HKG",
	"Macao SAR":                        "MAC",
	"Congo (Kinshasa)":                 "COD",
	"Congo (Brazzaville)":              "COG",
	"Republic of the Congo":            "COG",
	"Cote d'Ivoire":                    "CIV",
	"Burma":                            "MMR",
	"Czech Republic":                   "CZE",
	"Holy See":                         "VAT",
	"Vatican City":                     "VAT",
	"West Bank and Gaza":               "PSE",
	"occupied Palestinian territory":   "PSE",
	"Kosovo":                           "XKX",
	"Swaziland":                        "SWZ",
	"Cabo Verde":                       "CPV",
	"Cape Verde":                       "CPV",
	"Timor-Leste":                      "TLS",
	"East Timor":                       "TLS",
	"North Macedonia":                  "MKD",
	"Russia":                           "RUS",
	"Russian Federation":               "RUS",
	"Iran":                             "IRN",
	"Iran (Islamic Republic of)":       "IRN",
	"Syria":                            "SYR",
	"Laos":                             "LAO",
	"Vietnam":                          "VNM",
	"Viet Nam":                         "VNM",
	"Bolivia":                          "BOL",
	"Venezuela":                        "VEN",
	"Tanzania":                         "TZA",
	"Moldova":                          "MDA",
	"Republic of Moldova":              "MDA",
	"Brunei":                           "BRN",
	"Micronesia":                       "FSM",
	"Bahamas, The":                     "BHS",
	"The Bahamas":                      "BHS",
	"Gambia, The":                      "GMB",
	"The Gambia":                       "GMB",
	"UK":                               "GBR",
	"United Kingdom of Great Britain":  "GBR",
	"Saint Vincent and the Grenadine":  "VCT",
	"St. Martin":                       "MAF",
	"Channel Islands":                  "GBR",
	"Others":                           "",
	"Diamond Princess":                 "",
	"MS Zaandam":                       "",
	"Summer Olympics 2020":             "",
	"Winter Olympics 2022":             "",
	"Antarctica":                       "ATA",
}
