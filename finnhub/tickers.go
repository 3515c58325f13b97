package finnhub

// Nifty50Tickers lists the NSE symbols tracked for per-company news.
func Nifty50Tickers() []string {
	return []string{
		"ADANIENT.NS", "ADANIPORTS.NS", "APOLLOHOSP.NS", "ASIANPAINT.NS", "AXISBANK.NS",
		"BAJAJ-AUTO.NS", "BAJFINANCE.NS", "BAJAJFINSV.NS", "BHARTIARTL.NS", "BPCL.NS",
		"BRITANNIA.NS", "CIPLA.NS", "COALINDIA.NS", "DIVISLAB.NS", "DRREDDY.NS",
		"EICHERMOT.NS", "GRASIM.NS", "HCLTECH.NS", "HDFC.NS", "HDFCBANK.NS",
		"HDFCLIFE.NS", "HEROMOTOCO.NS", "HINDALCO.NS", "HINDUNILVR.NS", "ICICIBANK.NS",
		"INDUSINDBK.NS", "INFY.NS", "ITC.NS", "JSWSTEEL.NS", "KOTAKBANK.NS",
		"LT.NS", "M&M.NS", "MARUTI.NS", "NESTLEIND.NS", "NTPC.NS", "ONGC.NS",
		"POWERGRID.NS", "RELIANCE.NS", "SBILIFE.NS", "SBIN.NS", "SUNPHARMA.NS",
		"TATACONSUM.NS", "TATAMOTORS.NS", "TATASTEEL.NS", "TECHM.NS", "TITAN.NS",
		"ULTRACEMCO.NS", "UPL.NS", "WIPRO.NS",
	}
}

// indianMarketKeywords filter general world news down to stories with a
// plausible bearing on Indian markets.
var indianMarketKeywords = []string{
	"india", "indian", "nifty", "sensex", "bse", "nse", "mumbai", "delhi",
	"rupee", "rbi", "reserve bank", "modi", "adani", "tata", "reliance",
	"infosys", "wipro", "hdfc", "icici", "sbi", "asian market", "emerging market",
}
