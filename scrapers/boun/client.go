package main

import (
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/bounhub/boun-backend/common/conf"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// The registration system omits the charset from most responses and serves
// Turkish text in windows-1254.
const fallbackCharset = "windows-1254"

type bounClient struct {
	httpClient *http.Client
	baseUrl    string
}

func newClient(config conf.Config) *bounClient {
	return &bounClient{
		httpClient: &http.Client{
			Timeout: config.ScrapeTimeout(),
		},
		baseUrl: config.Scrape.BaseUrl,
	}
}

// pageUrl builds the schedule page address for one department. The donem
// parameter is taken as-is while the department name is query escaped, the
// way the registration system expects them.
func (bc *bounClient) pageUrl(donem, abbr, departmentName string) string {
	return bc.baseUrl + "?donem=" + donem + "&kisaadi=" + abbr + "&bolum=" + url.QueryEscape(departmentName)
}

// fetchPage retrieves one schedule page and returns its decoded markup.
func (bc *bounClient) fetchPage(pageUrl string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, pageUrl, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,tr;q=0.8")
	req.Header.Set("Accept-Charset", "utf-8")

	resp, err := bc.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch %s", pageUrl)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("unexpected status code %d from %s", resp.StatusCode, pageUrl)
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, params, _ := mime.ParseMediaType(contentType)
	if !strings.Contains(mediaType, "text/html") {
		return "", errors.Errorf("unexpected content type: %s", contentType)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "error reading response body")
	}

	markup, err := decodePage(body, params["charset"])
	if err != nil {
		return "", err
	}

	if len(markup) < 1000 {
		log.WithFields(log.Fields{"length": len(markup), "url": pageUrl}).
			Warnln("response seems too short, may be an error page")
	}

	return markup, nil
}

func decodePage(body []byte, charset string) (string, error) {
	if charset == "" {
		charset = fallbackCharset
	}

	switch strings.ToLower(charset) {
	case "utf-8", "utf8":
		return string(body), nil
	case "windows-1254":
		decoded, err := charmap.Windows1254.NewDecoder().Bytes(body)
		if err != nil {
			return "", errors.Wrapf(err, "decoding error using charset %s", charset)
		}
		return string(decoded), nil
	case "iso-8859-9", "latin5":
		decoded, err := charmap.ISO8859_9.NewDecoder().Bytes(body)
		if err != nil {
			return "", errors.Wrapf(err, "decoding error using charset %s", charset)
		}
		return string(decoded), nil
	default:
		log.WithFields(log.Fields{"charset": charset}).Warnln("unknown charset, reading as-is")
		return string(body), nil
	}
}
