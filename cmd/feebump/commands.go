
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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/btcsuite/btcutil"

	"github.com/btcsuite/feebump/address"
	"github.com/btcsuite/feebump/boost"
	"github.com/btcsuite/feebump/feeoracle"
	"github.com/btcsuite/feebump/internal/cfgutil"
	"github.com/btcsuite/feebump/rawtx"
)

//maxTxHexSize限制从标准输入读取的十六进制。
const maxTxHexSize = 4 << 20

func errContext(err error, context string) error {
	return fmt.Errorf("%s: %v", context, err)
}

func pickNoun(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

//txArg是以十六进制给出的交易，或者是表示从标准输入读取的-。
type txArg struct {
	Tx string `positional-arg-name:"tx" description:"Hex-encoded transaction, or - to read it from stdin"`
}

//feeOpts描述如何得到交易已支付的费用。
type feeOpts struct {
	TxFee     cfgutil.ExplicitInt64 `long:"txfee" description:"Fee already paid by the transaction, in satoshis"`
	LookupFee bool                  `long:"lookupfee" description:"Look up the fee already paid by the transaction"`
}

//app保存命令共享的状态和外部协作者。
type app struct {
	cfg    *config
	policy boost.Policy
	out    io.Writer
	in     io.Reader

	oracle     feeoracle.Oracle
	stopOracle func()
}

func newApp(cfg *config) *app {
	return &app{
		cfg:    cfg,
		policy: boost.Policy{RelayFeePerKb: cfg.RelayFee.Amount},
		out:    os.Stdout,
		in:     os.Stdin,
	}
}

//feeOracle返回费用来源，首次使用时创建。配置了--rpcconnect时使用
//节点，否则使用HTTP费用服务。
func (a *app) feeOracle() (feeoracle.Oracle, error) {
	if a.oracle != nil {
		return a.oracle, nil
	}
	if a.cfg.RPCConnect != "" {
		connConfig, err := rpcConnConfig(a.cfg)
		if err != nil {
			return nil, err
		}
		client, err := feeoracle.NewChainClient(connConfig)
		if err != nil {
			return nil, err
		}
		log.Debugf("Using node %s for fee data", a.cfg.RPCConnect)
		a.oracle, a.stopOracle = client, client.Stop
		return a.oracle, nil
	}

	client, err := feeoracle.NewHTTPClient(&feeoracle.HTTPConfig{
		FeeURL:    a.cfg.FeeURL,
		TxURL:     a.cfg.TxURL,
		Proxy:     a.cfg.Proxy,
		ProxyUser: a.cfg.ProxyUser,
		ProxyPass: a.cfg.ProxyPass,
		Timeout:   a.cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}
	a.oracle = client
	return a.oracle, nil
}

func (a *app) close() {
	if a.stopOracle != nil {
		a.stopOracle()
	}
}

//readTxHex返回参数中的十六进制，或者在参数为-时从标准输入读取。
func (a *app) readTxHex(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	b, err := ioutil.ReadAll(io.LimitReader(a.in, maxTxHexSize))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (a *app) readTx(arg string) (*rawtx.Transaction, error) {
	txHex, err := a.readTxHex(arg)
	if err != nil {
		return nil, errContext(err, "failed to read transaction")
	}
	tx, err := rawtx.DeserializeHex(txHex)
	if err != nil {
		return nil, errContext(err, "failed to decode transaction")
	}
	return tx, nil
}

//currentFee返回交易已支付的费用以及该费用是否已知。未给出--txfee时，
//在--lookupfee或required为真时查询费用，否则费用未知。
func (a *app) currentFee(ctx context.Context, tx *rawtx.Transaction, opts *feeOpts,
	required bool) (int64, bool, error) {

	switch {
	case opts.TxFee.ExplicitlySet() && opts.LookupFee:
		return 0, false, errors.New("only one of --txfee and --lookupfee " +
			"may be given")
	case opts.TxFee.ExplicitlySet():
		if opts.TxFee.Value < 0 {
			return 0, false, fmt.Errorf("negative transaction fee %d",
				opts.TxFee.Value)
		}
		return opts.TxFee.Value, true, nil
	case !opts.LookupFee && !required:
		return 0, false, nil
	}

	if a.cfg.RPCConnect == "" && a.cfg.TxURL == "" {
		return 0, false, fmt.Errorf("no transaction lookup service for "+
			"%s: give the fee with --txfee, or set --txurl or --rpcconnect",
			activeNet.Params.Name)
	}
	oracle, err := a.feeOracle()
	if err != nil {
		return 0, false, err
	}
	log.Debugf("Looking up the fee paid by %s", tx.TxID())
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()
	fee, err := oracle.TransactionFee(ctx, tx.TxID())
	if err != nil {
		return 0, false, errContext(err, "failed to look up transaction fee")
	}
	return fee, true, nil
}

//feeRate返回rate，为零时从费用来源获取最快的推荐费率。
func (a *app) feeRate(ctx context.Context, rate int64) (int64, error) {
	if rate < 0 {
		return 0, fmt.Errorf("negative fee rate %d", rate)
	}
	if rate != 0 {
		return rate, nil
	}
	oracle, err := a.feeOracle()
	if err != nil {
		return 0, err
	}
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()
	fees, err := oracle.RecommendedFees(ctx)
	if err != nil {
		return 0, errContext(err, "failed to fetch recommended fees")
	}
	log.Infof("Using recommended fee rate of %d sat/B", fees.FastestFee)
	return fees.FastestFee, nil
}

func feeRateString(fee int64, size int) string {
	if size == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f sat/B", float64(fee)/float64(size))
}

//inspectCmd显示交易。
type inspectCmd struct {
	feeOpts
	Recommend bool  `long:"recommend" description:"Show recommended RBF and CPFP fees"`
	Rate      int64 `long:"rate" description:"Fee rate in sat/B for --recommend; fetched from the fee source when unset"`
	Args      txArg `positional-args:"yes" required:"yes"`
}

func (c *inspectCmd) run(ctx context.Context, a *app) error {
	tx, err := a.readTx(c.Args.Tx)
	if err != nil {
		return err
	}
	fee, feeKnown, err := a.currentFee(ctx, tx, &c.feeOpts, false)
	if err != nil {
		return err
	}
	tx.Fee = fee

	replaceable := "no"
	if tx.SignalsReplacement() {
		replaceable = "yes"
	}
	w := a.out
	fmt.Fprintf(w, "Transaction %s\n", tx.TxID())
	fmt.Fprintf(w, "Version %d, locktime %d, %d bytes, replaceable: %s\n",
		tx.Version, tx.LockTime, tx.Size(), replaceable)
	fmt.Fprintf(w, "%d %s:\n", len(tx.Inputs),
		pickNoun(len(tx.Inputs), "input", "inputs"))
	for i, in := range tx.Inputs {
		fmt.Fprintf(w, "  %d: %v:%d sequence %08x\n", i, &in.PrevTxID,
			in.PrevIndex, in.Sequence)
	}
	fmt.Fprintf(w, "%d %s:\n", len(tx.Outputs),
		pickNoun(len(tx.Outputs), "output", "outputs"))
	for i, out := range tx.Outputs {
		class := address.Classify(out.Script)
		fmt.Fprintf(w, "  %d: %v %v %s\n", i, btcutil.Amount(out.Value),
			class.Class, class.Address(activeNet.Params))
	}
	fmt.Fprintf(w, "Total output %v\n", btcutil.Amount(tx.TotalOutputAmount()))
	if feeKnown {
		fmt.Fprintf(w, "Fee %d satoshis (%s)\n", tx.Fee,
			feeRateString(tx.Fee, tx.Size()))
	}

	if !c.Recommend {
		return nil
	}
	rate, err := a.feeRate(ctx, c.Rate)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Recommended at %d sat/B: RBF fee %d, CPFP child fee %d\n",
		rate, boost.RecommendedRBFFee(rate, tx.Size()),
		boost.RecommendedCPFPFee(rate, tx.Size()))
	return nil
}

//rbfCmd将费用从交易的一个输出转移到费用。
type rbfCmd struct {
	feeOpts
	Output int   `short:"o" long:"output" required:"true" description:"Index of the output that pays the extra fee"`
	Delta  int64 `long:"delta" description:"Satoshis to move from the output to the fee"`
	Fee    int64 `long:"fee" description:"New total fee in satoshis"`
	Rate   int64 `long:"rate" description:"New fee rate in sat/B; fetched from the fee source when no delta, fee or rate is given"`
	Args   txArg `positional-args:"yes" required:"yes"`
}

func (c *rbfCmd) run(ctx context.Context, a *app) error {
	if countSet(c.Delta != 0, c.Fee != 0, c.Rate != 0) > 1 {
		return errors.New("only one of --delta, --fee and --rate may be given")
	}
	tx, err := a.readTx(c.Args.Tx)
	if err != nil {
		return err
	}
//替换的费用是相对于已支付的费用计算的，因此必须知道该费用。
	tx.Fee, _, err = a.currentFee(ctx, tx, &c.feeOpts, true)
	if err != nil {
		return err
	}
	if !tx.SignalsReplacement() {
		log.Warnf("Transaction %s does not signal replaceability; "+
			"nodes enforcing BIP125 will reject the replacement", tx.TxID())
	}
	orig := tx.Copy()

	switch {
	case c.Delta != 0:
		err = a.policy.ApplyFeeDelta(tx, c.Output, c.Delta)
	case c.Fee != 0:
		err = a.policy.SetFee(tx, c.Output, c.Fee)
	default:
		var rate int64
		rate, err = a.feeRate(ctx, c.Rate)
		if err != nil {
			return err
		}
		err = a.policy.SetFee(tx, c.Output,
			boost.RecommendedRBFFee(rate, tx.Size()))
	}
	if err != nil {
		return errContext(err, "failed to adjust fee")
	}

	if tx.Fee <= orig.Fee {
		log.Warnf("New fee %d does not exceed the original fee %d",
			tx.Fee, orig.Fee)
	} else if relayFee := a.policy.MinRelayFee(tx.Size()); btcutil.Amount(tx.Fee-orig.Fee) < relayFee {
		log.Warnf("Fee increase %d is below the relay fee %d for %d bytes",
			tx.Fee-orig.Fee, int64(relayFee), tx.Size())
	}

	w := a.out
	fmt.Fprintf(w, "Output %d: %v -> %v\n", c.Output,
		btcutil.Amount(orig.Outputs[c.Output].Value),
		btcutil.Amount(tx.Outputs[c.Output].Value))
	fmt.Fprintf(w, "Fee %d -> %d satoshis (%s)\n", orig.Fee, tx.Fee,
		feeRateString(tx.Fee, tx.Size()))
	fmt.Fprintf(w, "Unsigned replacement:\n%s\n", rawtx.SerializeHex(tx, true))
	return nil
}

//cpfpCmd构造一个花费父交易输出的子交易。
type cpfpCmd struct {
	feeOpts
	Output      uint32 `short:"o" long:"output" required:"true" description:"Index of the parent output to spend"`
	Destination string `long:"dest" required:"true" description:"Address that receives the child's output"`
	Fee         int64  `long:"fee" description:"Child fee in satoshis"`
	Rate        int64  `long:"rate" description:"Fee rate in sat/B for parent and child together; fetched from the fee source when unset"`
	Args        txArg  `positional-args:"yes" required:"yes"`
}

func (c *cpfpCmd) run(ctx context.Context, a *app) error {
	if c.Fee != 0 && c.Rate != 0 {
		return errors.New("only one of --fee and --rate may be given")
	}
	parent, err := a.readTx(c.Args.Tx)
	if err != nil {
		return err
	}
	var feeKnown bool
	parent.Fee, feeKnown, err = a.currentFee(ctx, parent, &c.feeOpts, false)
	if err != nil {
		return err
	}

	fee := c.Fee
	if fee == 0 {
		rate, err := a.feeRate(ctx, c.Rate)
		if err != nil {
			return err
		}
		fee = boost.RecommendedCPFPFee(rate, parent.Size())
	}

	child, err := a.policy.NewChild(parent, c.Output, fee, c.Destination,
		activeNet.Params)
	if err != nil {
		return errContext(err, "failed to build child transaction")
	}
	pkg := &boost.Package{Parent: parent, Child: child}

	w := a.out
	fmt.Fprintf(w, "Child spends %s:%d and pays %v to %s\n", parent.TxID(),
		c.Output, btcutil.Amount(child.Outputs[0].Value), c.Destination)
	fmt.Fprintf(w, "Child fee %d satoshis, estimated signed size %d bytes\n",
		child.Fee, boost.EstimateSignedSize(child))
	if feeKnown {
		fmt.Fprintf(w, "Package fee rate %.2f sat/B\n", pkg.PackageFeeRate())
	}
	fmt.Fprintf(w, "Unsigned child:\n%s\n", rawtx.SerializeHex(child, true))
	return nil
}

func countSet(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
