/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package seeder

const sybCSVBaseURL = "https://data.un.org/_Docs/SYB/CSV/"

// syb builds a catalog entry backed by a UN Statistical Yearbook CSV file.
func syb(id, name, category, description, file string) DatasetData {
	return DatasetData{
		ID:               id,
		Name:             name,
		Category:         category,
		Description:      description,
		Source:           "undata",
		SourceIdentifier: sybCSVBaseURL + file,
		LastUpdated:      "2024-11-27",
	}
}

// wb builds a catalog entry backed by a development bank indicator.
func wb(id, name, category, description, indicator string) DatasetData {
	return DatasetData{
		ID:               id,
		Name:             name,
		Category:         category,
		Description:      description,
		Source:           "worldbank",
		SourceIdentifier: indicator,
		LastUpdated:      "2025-01-15",
	}
}

// getSeedData returns the predefined seed data for database initialization.
func getSeedData() seedData {
	return seedData{
		Datasets: []DatasetData{
			// Population
			syb("population-total", "Total population", "Population",
				"Total population by country, annual estimates", "SYB66_1_Population.csv"),
			syb("population-density", "Population density", "Population",
				"Population per square kilometer", "SYB66_2_Population_Density.csv"),
			syb("population-growth", "Population growth rate", "Population",
				"Annual population growth rates by country", "SYB66_3_Population_Growth.csv"),
			syb("migrants-refugees", "International migrants and refugees", "Population",
				"Stock of international migrants and refugee populations", "SYB66_4_Migrants_Refugees.csv"),

			// National accounts
			syb("gdp-total", "Gross domestic product (GDP)", "National Accounts",
				"GDP in current prices and constant prices", "SYB66_230_GDP.csv"),
			syb("gdp-per-capita", "GDP per capita", "National Accounts",
				"GDP per capita in US dollars", "SYB66_231_GDP_Per_Capita.csv"),

			// Education
			syb("education-enrollment", "Gross enrollment ratio by education level", "Education",
				"Primary, secondary, and tertiary education enrollment rates", "SYB66_319_Enrollment.csv"),
			syb("education-teachers", "Teaching staff", "Education",
				"Number of teachers at primary, secondary, and tertiary levels", "SYB66_320_Teachers.csv"),
			syb("education-expenditure", "Education expenditure", "Education",
				"Public expenditure on education as % of GDP and government expenditure",
				"SYB66_321_Education_Expenditure.csv"),

			// Labour market
			syb("labour-force", "Labour force participation", "Labour Market",
				"Labour force participation rates by sex", "SYB66_329_Labour_Force.csv"),
			syb("unemployment", "Unemployment", "Labour Market",
				"Unemployment rates by sex and age groups", "SYB66_330_Unemployment.csv"),

			// Price indices
			syb("cpi", "Consumer price index (CPI)", "Price Indices",
				"Consumer price index, general and by category", "SYB66_224_CPI.csv"),
			syb("food-price-index", "Food price index", "Price Indices",
				"Food component of consumer price index", "SYB66_225_Food_Prices.csv"),

			// International trade
			syb("trade-balance", "International trade balance", "International Trade",
				"Exports, imports, and trade balance", "SYB66_264_Trade.csv"),
			syb("trade-major-partners", "Major trading partners", "International Trade",
				"Top import and export partners by country", "SYB66_265_Trade_Partners.csv"),

			// Energy
			syb("energy-production", "Energy production, trade and consumption", "Energy",
				"Energy production, imports, exports, and consumption by source", "SYB66_280_Energy.csv"),

			// Gender
			syb("women-parliament", "Seats held by women in parliament", "Gender",
				"Percentage of parliamentary seats occupied by women", "SYB66_317_Women_Parliament.csv"),
			syb("gender-parity-education", "Gender parity in education", "Gender",
				"Gender parity index in primary, secondary, and tertiary education",
				"SYB66_318_Gender_Education.csv"),

			// Health
			syb("life-expectancy", "Life expectancy at birth", "Health",
				"Life expectancy in years by sex", "SYB66_325_Life_Expectancy.csv"),
			syb("health-expenditure", "Health expenditure", "Health",
				"Health expenditure as % of GDP, public and private", "SYB66_326_Health_Expenditure.csv"),

			// Science and technology
			syb("rd-expenditure", "Research and development (R&D) expenditure", "Science & Technology",
				"R&D expenditure as % of GDP", "SYB66_327_RD_Expenditure.csv"),
			syb("patent-applications", "Patent applications", "Science & Technology",
				"Patent applications filed, residents and non-residents", "SYB66_328_Patents.csv"),

			// Environment
			syb("co2-emissions", "CO2 emissions", "Environment",
				"Carbon dioxide emissions from fossil fuels", "SYB66_290_CO2_Emissions.csv"),
			syb("protected-areas", "Protected terrestrial and marine areas", "Environment",
				"Protected areas as % of total territory", "SYB66_291_Protected_Areas.csv"),
			syb("water-resources", "Water resources", "Environment",
				"Freshwater withdrawals and availability", "SYB66_292_Water.csv"),
			syb("threatened-species", "Threatened species", "Environment",
				"Number of threatened species by taxonomic group", "SYB66_293_Species.csv"),

			// Communication
			syb("internet-usage", "Internet usage", "Communication",
				"Internet users per 100 inhabitants", "SYB66_310_Internet.csv"),

			// Tourism
			syb("tourist-arrivals", "Tourist/visitor arrivals and tourism expenditure", "Tourism",
				"International tourist arrivals and tourism receipts", "SYB66_313_Tourism.csv"),

			// Crime
			syb("intentional-homicide", "Intentional homicide and crime", "Crime",
				"Intentional homicide rates per 100,000 population", "SYB66_314_Crime.csv"),

			// Development assistance
			syb("oda-received", "Official development assistance (ODA) received", "Development Assistance",
				"Net ODA received by country", "SYB66_322_ODA_Received.csv"),
			syb("oda-disbursed", "Official development assistance (ODA) disbursed", "Development Assistance",
				"Net ODA disbursed by donor country", "SYB66_323_ODA_Disbursed.csv"),

			// Finance
			syb("exchange-rates", "Exchange rates", "Finance",
				"National currency per US dollar, period average", "SYB66_226_Exchange_Rates.csv"),
			syb("interest-rates", "Interest rates", "Finance",
				"Short-term and long-term interest rates", "SYB66_227_Interest_Rates.csv"),

			// Development bank indicators with recent years available.
			wb("wb-population-total", "Population, total (World Bank)", "Population",
				"Total population including 2024-2025 estimates", "SP.POP.TOTL"),
			wb("wb-gdp-current", "GDP, current US$ (World Bank)", "National Accounts",
				"GDP in current US dollars including recent years", "NY.GDP.MKTP.CD"),
			wb("wb-gdp-per-capita", "GDP per capita, current US$ (World Bank)", "National Accounts",
				"GDP per capita including 2024-2025 data", "NY.GDP.PCAP.CD"),
			wb("wb-inflation", "Inflation, consumer prices (World Bank)", "Price Indices",
				"Annual % change in consumer prices, recent data", "FP.CPI.TOTL.ZG"),
			wb("wb-unemployment", "Unemployment rate (World Bank)", "Labour Market",
				"Unemployment rate including 2024-2025", "SL.UEM.TOTL.ZS"),
			wb("wb-internet-users", "Internet users (% of population)", "Communication",
				"Individuals using the Internet, recent data", "IT.NET.USER.ZS"),
			wb("wb-co2-emissions", "CO2 emissions (metric tons per capita)", "Environment",
				"Carbon dioxide emissions per capita with recent estimates", "EN.ATM.CO2E.PC"),
			wb("wb-life-expectancy", "Life expectancy at birth (World Bank)", "Health",
				"Life expectancy including 2024-2025 projections", "SP.DYN.LE00.IN"),
			wb("wb-trade-gdp", "Trade (% of GDP)", "International Trade",
				"Sum of exports and imports as % of GDP", "NE.TRD.GNFS.ZS"),
			wb("wb-energy-use", "Energy use (kg of oil equivalent per capita)", "Energy",
				"Energy consumption per capita", "EG.USE.PCAP.KG.OE"),
		},
	}
}
