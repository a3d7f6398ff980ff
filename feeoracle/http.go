
//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
//版权所有（c）2016 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package feeoracle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/net/proxy"
)

const (
//DefaultFeeURL返回fastestFee、halfHourFee和hourFee（聪/字节）。
	DefaultFeeURL = "https://bitcoinfees.earn.com/api/v1/fees/recommended"

//DefaultTxURL是交易查询端点；%s被替换为交易ID。
//响应的fees字段是交易支付的费用（聪）。
	DefaultTxURL = "https://api.blockcypher.com/v1/btc/main/txs/%s"

//DefaultTimeout限制每个请求的总时长。
	DefaultTimeout = 30 * time.Second

//maxResponseSize限制读取的响应体大小。
	maxResponseSize = 1 << 20
)

//HTTPConfig描述HTTP费用来源。
type HTTPConfig struct {
	FeeURL string
	TxURL  string

//Proxy是可选的SOCKS5代理地址（例如127.0.0.1:9050）。
	Proxy     string
	ProxyUser string
	ProxyPass string

	Timeout time.Duration
}

//HTTPClient从HTTP费用服务查询推荐费率和交易费用。
type HTTPClient struct {
	feeURL string
	txURL  string
	client *http.Client
}

//NewHTTPClient使用cfg创建HTTPClient。空字段使用默认值。
func NewHTTPClient(cfg *HTTPConfig) (*HTTPClient, error) {
	c := &HTTPClient{
		feeURL: cfg.FeeURL,
		txURL:  cfg.TxURL,
	}
	if c.feeURL == "" {
		c.feeURL = DefaultFeeURL
	}
	if c.txURL == "" {
		c.txURL = DefaultTxURL
	}
	if strings.Count(c.txURL, "%s") != 1 {
		return nil, fmt.Errorf("transaction URL %q must contain exactly "+
			"one %%s", c.txURL)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
	}
	if cfg.Proxy != "" {
		var auth *proxy.Auth
		if cfg.ProxyUser != "" || cfg.ProxyPass != "" {
			auth = &proxy.Auth{
				User:     cfg.ProxyUser,
				Password: cfg.ProxyPass,
			}
		}
		dialer, err := proxy.SOCKS5("tcp", cfg.Proxy, auth, proxy.Direct)
		if err != nil {
			return nil, err
		}
		transport.Proxy = nil
		transport.DialContext = contextDialer(dialer)
	}
	c.client = &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
	return c, nil
}

//contextDialer使不支持上下文的代理拨号器可被ctx取消。取消后
//仍在进行的拨号完成时关闭其连接。
func contextDialer(d proxy.Dialer) func(ctx context.Context, network, addr string) (net.Conn, error) {
	type dialResult struct {
		conn net.Conn
		err  error
	}
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results := make(chan dialResult, 1)
		go func() {
			conn, err := d.Dial(network, addr)
			results <- dialResult{conn, err}
		}()

		select {
		case r := <-results:
			return r.conn, r.err
		case <-ctx.Done():
			go func() {
				if r := <-results; r.conn != nil {
					r.conn.Close()
				}
			}()
			return nil, ctx.Err()
		}
	}
}

//RecommendedFees获取当前推荐费率。
func (c *HTTPClient) RecommendedFees(ctx context.Context) (*RecommendedFees, error) {
	var fees RecommendedFees
	if err := c.getJSON(ctx, c.feeURL, &fees); err != nil {
		return nil, err
	}
	if err := fees.validate(); err != nil {
		return nil, err
	}
	log.Debugf("Recommended fees from %s: fastest %d, half hour %d, "+
		"hour %d sat/B", c.feeURL, fees.FastestFee, fees.HalfHourFee,
		fees.HourFee)
	return &fees, nil
}

//TransactionFee获取txid支付的费用。
func (c *HTTPClient) TransactionFee(ctx context.Context, txid string) (int64, error) {
	hash, err := parseTxID(txid)
	if err != nil {
		return 0, err
	}

	var reply struct {
		Fees *int64 `json:"fees"`
	}
	url := fmt.Sprintf(c.txURL, hash)
	if err := c.getJSON(ctx, url, &reply); err != nil {
		return 0, err
	}
	if reply.Fees == nil {
		return 0, fmt.Errorf("response from %s has no fees field", url)
	}
	if *reply.Fees < 0 {
		return 0, fmt.Errorf("response from %s has negative fee %d", url,
			*reply.Fees)
	}
	log.Debugf("Fee of %v is %d satoshis", hash, *reply.Fees)
	return *reply.Fees, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, url string, v interface{}) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req.WithContext(ctx))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxResponseSize)
	if resp.StatusCode != http.StatusOK {
		msg, _ := ioutil.ReadAll(io.LimitReader(body, 512))
		return fmt.Errorf("GET %s: %s: %s", url, resp.Status,
			strings.TrimSpace(string(msg)))
	}
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("GET %s: malformed response: %v", url, err)
	}
	return nil
}

//parseTxID只接受完整的64个十六进制字符的交易ID。
func parseTxID(txid string) (*chainhash.Hash, error) {
	if len(txid) != chainhash.MaxHashStringSize {
		return nil, fmt.Errorf("transaction id %q is not %d hex characters",
			txid, chainhash.MaxHashStringSize)
	}
	return chainhash.NewHashFromStr(txid)
}
