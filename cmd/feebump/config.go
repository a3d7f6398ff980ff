
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
	"fmt"
	"io/ioutil"
	"net"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcutil"
	flags "github.com/jessevdk/go-flags"

	"github.com/btcsuite/feebump/feeoracle"
	"github.com/btcsuite/feebump/internal/cfgutil"
	"github.com/btcsuite/feebump/internal/prompt"
	"github.com/btcsuite/feebump/internal/zero"
	"github.com/btcsuite/feebump/netparams"
)

const (
	defaultConfigFilename = "feebump.conf"
	defaultNodesFilename  = "nodes.txt"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "feebump.log"
)

var (
	btcdDefaultCAFile = filepath.Join(btcutil.AppDataDir("btcd", false), "rpc.cert")
	defaultAppDataDir = btcutil.AppDataDir("feebump", false)
	defaultConfigFile = filepath.Join(defaultAppDataDir, defaultConfigFilename)
	defaultNodesFile  = filepath.Join(defaultAppDataDir, defaultNodesFilename)
	defaultLogDir     = filepath.Join(defaultAppDataDir, defaultLogDirname)
)

//activeNet是命令行选择的网络。
var activeNet = &netparams.MainNetParams

type config struct {
//一般应用行为
	ConfigFile  *cfgutil.ExplicitString `short:"C" long:"configfile" description:"Path to configuration file"`
	AppDataDir  *cfgutil.ExplicitString `short:"A" long:"appdata" description:"Application data directory for config, peers file and logs"`
	ShowVersion bool                    `short:"V" long:"version" description:"Display version information and exit"`
	TestNet3    bool                    `long:"testnet" description:"Use the test Bitcoin network (version 3)"`
	SimNet      bool                    `long:"simnet" description:"Use the simulation test network"`
	DebugLevel  string                  `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	LogDir      string                  `long:"logdir" description:"Directory to log output."`
	RelayFee    *cfgutil.AmountFlag     `long:"relayfee" description:"Relay fee per kilobyte used to reject dust outputs; 0 only rejects non-positive outputs"`

//费用服务选项
	FeeURL    string        `long:"feeurl" description:"Recommended fee endpoint returning fastestFee in sat/B"`
	TxURL     string        `long:"txurl" description:"Transaction lookup endpoint; %s is replaced by the transaction id"`
	Proxy     string        `long:"proxy" description:"Connect via SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	ProxyUser string        `long:"proxyuser" description:"Username for proxy server"`
	ProxyPass string        `long:"proxypass" default-mask:"-" description:"Password for proxy server"`
	Timeout   time.Duration `long:"timeout" description:"Timeout for each fee service or RPC request"`

//节点RPC选项
	RPCConnect       string                  `short:"c" long:"rpcconnect" description:"Hostname[:port] of a btcd or bitcoind RPC server used for fee data and broadcasting"`
	RPCUser          string                  `short:"u" long:"rpcuser" description:"RPC username"`
	RPCPass          string                  `short:"P" long:"rpcpass" default-mask:"-" description:"RPC password; prompted for when a username is set"`
	CAFile           *cfgutil.ExplicitString `long:"cafile" description:"File containing root certificates to authenticate TLS connections with the RPC server"`
	DisableClientTLS bool                    `long:"noclienttls" description:"Disable TLS for the RPC client -- NOTE: This is only allowed if the RPC client is connecting to localhost"`
	NodesFile        *cfgutil.ExplicitString `long:"nodes" description:"File listing broadcast peers, one host[:port] per line"`

//命令
	Inspect   inspectCmd   `command:"inspect" description:"Decode a transaction and show its outputs and fee"`
	RBF       rbfCmd       `command:"rbf" description:"Pay more fee by shrinking one of the transaction's own outputs"`
	CPFP      cpfpCmd      `command:"cpfp" description:"Build a child transaction that spends an unconfirmed output with a higher fee"`
	Broadcast broadcastCmd `command:"broadcast" description:"Relay a signed transaction to the configured peers"`
}

//cleanAndExpandPath扩展环境变量和前导~，并清理结果路径。
func cleanAndExpandPath(path string) string {
//注意不要对已清理的路径进行操作，因为Windows上的
//分隔符可能已被更改。
	path = os.ExpandEnv(path)

	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

//扩展前导~，可以是~user或~/。
	path = path[1:]

	var pathSeparators string
	if runtime.GOOS == "windows" {
		pathSeparators = string(os.PathSeparator) + "/"
	} else {
		pathSeparators = string(os.PathSeparator)
	}

	userName := ""
	if i := strings.IndexAny(path, pathSeparators); i != -1 {
		userName = path[:i]
		path = path[i:]
	}

	homeDir := ""
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if err == nil {
		homeDir = u.HomeDir
	}
//如果用户查找失败或用户没有主目录，则回退到CWD。
	if homeDir == "" {
		homeDir = "."
	}

	return filepath.Join(homeDir, path)
}

//validLogLevel返回logLevel是否为有效的调试日志级别。
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical":
		return true
	}
	return false
}

//supportedSubsystems返回用于日志记录的受支持子系统的排序切片。
func supportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}

//对子系统进行排序以便稳定显示。
	sort.Strings(subsystems)
	return subsystems
}

//parseAndSetDebugLevels解析level或subsystem=level[,...]形式的调试级别
//并相应地设置级别。
func parseAndSetDebugLevels(debugLevel string) error {
//当指定的字符串没有任何分隔符时，将其视为
//所有子系统的日志级别。
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if !validLogLevel(debugLevel) {
			str := "The specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		setLogLevels(debugLevel)
		return nil
	}

	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "The specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		fields := strings.SplitN(logLevelPair, "=", 2)
		subsysID, logLevel := fields[0], fields[1]

		if _, exists := subsystemLoggers[subsysID]; !exists {
			str := "The specified subsystem [%v] is invalid -- " +
				"supported subsystems %v"
			return fmt.Errorf(str, subsysID, supportedSubsystems())
		}

		if !validLogLevel(logLevel) {
			str := "The specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}

//loadConfig使用配置文件和命令行选项初始化并分析配置，
//并返回选定命令的名称。
//
//配置过程如下：
//1）从具有健全设置的默认配置开始
//2）预分析命令行以检查备用配置文件
//3）使用任何指定选项加载配置文件覆盖默认值
//4）解析cli选项并覆盖/添加任何指定选项
//
//命令行选项始终优先。
func loadConfig() (*config, string, error) {
	cfg := config{
		DebugLevel: defaultLogLevel,
		ConfigFile: cfgutil.NewExplicitString(defaultConfigFile),
		AppDataDir: cfgutil.NewExplicitString(defaultAppDataDir),
		LogDir:     defaultLogDir,
		RelayFee:   cfgutil.NewAmountFlag(0),
		Timeout:    feeoracle.DefaultTimeout,
		CAFile:     cfgutil.NewExplicitString(""),
		NodesFile:  cfgutil.NewExplicitString(defaultNodesFile),
	}

//预分析命令行选项，以查看是否指定了其他配置文件或版本标志。
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash)
	_, err := preParser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		if !preCfg.ShowVersion {
			fmt.Fprintln(os.Stderr, err)
			return nil, "", err
		}
	}

	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	if preCfg.ShowVersion {
		fmt.Println(appName, "version", version())
		os.Exit(0)
	}

//从文件加载附加配置。
	var configFileError error
	parser := flags.NewParser(&cfg, flags.Default)
	configFilePath := preCfg.ConfigFile.Value
	if preCfg.ConfigFile.ExplicitlySet() {
		configFilePath = cleanAndExpandPath(configFilePath)
	} else if preCfg.AppDataDir.ExplicitlySet() {
		appDataDir := cleanAndExpandPath(preCfg.AppDataDir.Value)
		configFilePath = filepath.Join(appDataDir, defaultConfigFilename)
	}
	err = flags.NewIniParser(parser).ParseFile(configFilePath)
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			fmt.Fprintln(os.Stderr, err)
			return nil, "", err
		}
		configFileError = err
	}

//再次分析命令行选项以确保它们优先。
	_, err = parser.Parse()
	if err != nil {
		return nil, "", err
	}
	command := parser.Active.Name

//如果指定了备用数据目录，则相对于它推导未显式设置的路径。
	if cfg.AppDataDir.ExplicitlySet() {
		cfg.AppDataDir.Value = cleanAndExpandPath(cfg.AppDataDir.Value)
		if !cfg.NodesFile.ExplicitlySet() {
			cfg.NodesFile.Value = filepath.Join(cfg.AppDataDir.Value,
				defaultNodesFilename)
		}
		if cfg.LogDir == defaultLogDir {
			cfg.LogDir = filepath.Join(cfg.AppDataDir.Value,
				defaultLogDirname)
		}
	}

	params, err := netparams.Select(cfg.TestNet3, cfg.SimNet)
	if err != nil {
		err := fmt.Errorf("loadConfig: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return nil, "", err
	}
	activeNet = params

//将网络类型附加到日志目录中，使其对每个网络具有“名称空间”。
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	cfg.LogDir = filepath.Join(cfg.LogDir, activeNet.Params.Name)

//列出支持的子系统并退出的特殊显示命令。
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

//初始化日志旋转。日志旋转初始化后，可以使用记录器变量。
	if err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, "", err
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("loadConfig: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return nil, "", err
	}

//没有默认查询服务的网络（simnet）保持为空，查询费用时直接报错。
	if cfg.TxURL == "" {
		cfg.TxURL = activeNet.TxURL
	}
	cfg.NodesFile.Value = cleanAndExpandPath(cfg.NodesFile.Value)

	if cfg.RPCConnect != "" {
		if err := checkRPCConfig(&cfg); err != nil {
			err := fmt.Errorf("loadConfig: %v", err)
			fmt.Fprintln(os.Stderr, err)
			return nil, "", err
		}
	}

//在最后的命令行分析成功后警告丢失的配置文件。
	if configFileError != nil && preCfg.ConfigFile.ExplicitlySet() {
		log.Warnf("%v", configFileError)
	}

	return &cfg, command, nil
}

//checkRPCConfig规范化RPC服务器地址并选择TLS证书。
func checkRPCConfig(cfg *config) error {
	var err error
	cfg.RPCConnect, err = cfgutil.NormalizeAddress(cfg.RPCConnect,
		activeNet.RPCClientPort)
	if err != nil {
		return fmt.Errorf("invalid rpcconnect network address: %v", err)
	}
	if cfg.RPCUser == "" {
		return fmt.Errorf("an RPC username is required with --rpcconnect")
	}

	rpcHost, _, err := net.SplitHostPort(cfg.RPCConnect)
	if err != nil {
		return err
	}
	localhost := rpcHost == "localhost" || net.ParseIP(rpcHost).IsLoopback()
	if cfg.DisableClientTLS {
		if !localhost {
			return fmt.Errorf("the --noclienttls option may not be used "+
				"when connecting RPC to non localhost addresses: %s",
				cfg.RPCConnect)
		}
		return nil
	}

//如果未设置cafile，则在连接到本地btcd时使用其RPC证书。
	if !cfg.CAFile.ExplicitlySet() && localhost {
		certExists, err := cfgutil.FileExists(btcdDefaultCAFile)
		if err != nil {
			return err
		}
		if certExists {
			cfg.CAFile.Value = btcdDefaultCAFile
		}
	}
	cfg.CAFile.Value = cleanAndExpandPath(cfg.CAFile.Value)
	return nil
}

//rpcConnConfig返回到--rpcconnect服务器的连接配置。未设置密码时
//会提示用户输入。
func rpcConnConfig(cfg *config) (*rpcclient.ConnConfig, error) {
	connConfig := &rpcclient.ConnConfig{
		Host:         cfg.RPCConnect,
		User:         cfg.RPCUser,
		Pass:         cfg.RPCPass,
		DisableTLS:   cfg.DisableClientTLS,
		Proxy:        cfg.Proxy,
		ProxyUser:    cfg.ProxyUser,
		ProxyPass:    cfg.ProxyPass,
		HTTPPostMode: true,
	}
	if !cfg.DisableClientTLS && cfg.CAFile.Value != "" {
		certs, err := ioutil.ReadFile(cfg.CAFile.Value)
		if err != nil {
			return nil, err
		}
		connConfig.Certificates = certs
	}
	if connConfig.Pass == "" && connConfig.User != "" {
		pass, err := prompt.Password(fmt.Sprintf("RPC password for %s@%s",
			cfg.RPCUser, cfg.RPCConnect))
		if err != nil {
			return nil, err
		}
		connConfig.Pass = string(pass)
		zero.Bytes(pass)
		cfg.RPCPass = connConfig.Pass
	}
	return connConfig, nil
}
