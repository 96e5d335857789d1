package symbols

import "quotehub/internal/model"

// nse builds the common NSE mapping pair: Fyers "NSE:<ticker>-EQ" against
// Yahoo "<ticker>.NS".
func nse(ticker, sector string) model.Instrument {
	return model.Instrument{
		Ticker:         ticker,
		PrimarySymbol:  "NSE:" + ticker + "-EQ",
		FallbackSymbol: ticker + ".NS",
		Sector:         sector,
	}
}

// defaultInstruments is the built-in ~100-instrument universe used when no
// mapping file is configured. Index entries deviate from the -EQ convention,
// and SENSEX has no primary mapping at all (Yahoo only).
func defaultInstruments() []model.Instrument {
	return []model.Instrument{
		// Indices
		{Ticker: "NIFTY50", PrimarySymbol: "NSE:NIFTY50-INDEX", FallbackSymbol: "^NSEI", Sector: "Index"},
		{Ticker: "BANKNIFTY", PrimarySymbol: "NSE:NIFTYBANK-INDEX", FallbackSymbol: "^NSEBANK", Sector: "Index"},
		{Ticker: "SENSEX", FallbackSymbol: "^BSESN", Sector: "Index"},

		// Energy / Oil & Gas
		nse("RELIANCE", "Energy"),
		nse("ONGC", "Energy"),
		nse("IOC", "Energy"),
		nse("BPCL", "Energy"),
		nse("GAIL", "Energy"),
		nse("NTPC", "Energy"),
		nse("POWERGRID", "Energy"),
		nse("TATAPOWER", "Energy"),
		nse("ADANIGREEN", "Energy"),
		nse("ADANIPOWER", "Energy"),

		// IT
		nse("TCS", "IT"),
		nse("INFY", "IT"),
		nse("WIPRO", "IT"),
		nse("HCLTECH", "IT"),
		nse("TECHM", "IT"),
		nse("LTIM", "IT"),
		nse("MPHASIS", "IT"),
		nse("COFORGE", "IT"),
		nse("PERSISTENT", "IT"),

		// Banking
		nse("HDFCBANK", "Banking"),
		nse("ICICIBANK", "Banking"),
		nse("SBIN", "Banking"),
		nse("KOTAKBANK", "Banking"),
		nse("AXISBANK", "Banking"),
		nse("INDUSINDBK", "Banking"),
		nse("BANKBARODA", "Banking"),
		nse("PNB", "Banking"),
		nse("CANBK", "Banking"),
		nse("IDFCFIRSTB", "Banking"),
		nse("FEDERALBNK", "Banking"),
		nse("AUBANK", "Banking"),

		// Financial services
		nse("BAJFINANCE", "Financial Services"),
		nse("BAJAJFINSV", "Financial Services"),
		nse("HDFCLIFE", "Financial Services"),
		nse("SBILIFE", "Financial Services"),
		nse("ICICIPRULI", "Financial Services"),
		nse("LICI", "Financial Services"),
		nse("CHOLAFIN", "Financial Services"),
		nse("MUTHOOTFIN", "Financial Services"),
		nse("PFC", "Financial Services"),
		nse("RECLTD", "Financial Services"),

		// Automobiles
		nse("MARUTI", "Automobile"),
		nse("TATAMOTORS", "Automobile"),
		nse("M&M", "Automobile"),
		nse("BAJAJ-AUTO", "Automobile"),
		nse("HEROMOTOCO", "Automobile"),
		nse("EICHERMOT", "Automobile"),
		nse("TVSMOTOR", "Automobile"),
		nse("ASHOKLEY", "Automobile"),
		nse("BHARATFORG", "Automobile"),
		nse("MOTHERSON", "Automobile"),

		// Pharma / Healthcare
		nse("SUNPHARMA", "Pharma"),
		nse("DRREDDY", "Pharma"),
		nse("CIPLA", "Pharma"),
		nse("DIVISLAB", "Pharma"),
		nse("APOLLOHOSP", "Pharma"),
		nse("LUPIN", "Pharma"),
		nse("AUROPHARMA", "Pharma"),
		nse("BIOCON", "Pharma"),
		nse("ALKEM", "Pharma"),
		nse("TORNTPHARM", "Pharma"),

		// FMCG
		nse("HINDUNILVR", "FMCG"),
		nse("ITC", "FMCG"),
		nse("NESTLEIND", "FMCG"),
		nse("BRITANNIA", "FMCG"),
		nse("DABUR", "FMCG"),
		nse("MARICO", "FMCG"),
		nse("GODREJCP", "FMCG"),
		nse("COLPAL", "FMCG"),
		nse("TATACONSUM", "FMCG"),
		nse("VBL", "FMCG"),

		// Metals & Mining
		nse("TATASTEEL", "Metals"),
		nse("JSWSTEEL", "Metals"),
		nse("HINDALCO", "Metals"),
		nse("VEDL", "Metals"),
		nse("COALINDIA", "Metals"),
		nse("NMDC", "Metals"),
		nse("SAIL", "Metals"),
		nse("JINDALSTEL", "Metals"),

		// Cement / Construction
		nse("ULTRACEMCO", "Cement"),
		nse("GRASIM", "Cement"),
		nse("SHREECEM", "Cement"),
		nse("AMBUJACEM", "Cement"),
		nse("ACC", "Cement"),
		nse("LT", "Construction"),
		nse("DLF", "Construction"),
		nse("GODREJPROP", "Construction"),
		nse("OBEROIRLTY", "Construction"),

		// Telecom / Media
		nse("BHARTIARTL", "Telecom"),
		nse("IDEA", "Telecom"),
		nse("INDUSTOWER", "Telecom"),
		nse("ZEEL", "Media"),
		nse("PVRINOX", "Media"),

		// Consumer / Retail
		nse("TITAN", "Consumer"),
		nse("ASIANPAINT", "Consumer"),
		nse("BERGEPAINT", "Consumer"),
		nse("HAVELLS", "Consumer"),
		nse("VOLTAS", "Consumer"),
		nse("DMART", "Retail"),
		nse("TRENT", "Retail"),
		nse("NYKAA", "Retail"),
		nse("ZOMATO", "Retail"),
		nse("PAYTM", "Retail"),
		nse("IRCTC", "Consumer"),

		// Infra / Logistics / Aviation
		nse("ADANIPORTS", "Infrastructure"),
		nse("ADANIENT", "Infrastructure"),
		nse("CONCOR", "Logistics"),
		nse("INDIGO", "Aviation"),

		// Chemicals
		nse("PIDILITIND", "Chemicals"),
		nse("SRF", "Chemicals"),
		nse("UPL", "Chemicals"),
		nse("DEEPAKNTR", "Chemicals"),
	}
}
